package setup

// runConan invokes one conan subcommand through direnv so the venv's
// conan binary and environment are in effect. Under --no-conan the
// command line is printed and nothing is executed; the switch covers
// every conan step of the run.
func (s *Setup) runConan(args ...string) error {
	line := "conan " + shellJoin(args)
	colArrow.Print("-> ")
	if s.flags.NoConan {
		cPrintf(colWarn, "SKIP: %s\n", line)
		return nil
	}
	colSuccess.Println(line)

	full := append([]string{"exec", s.cfg.SourceDir, "conan"}, args...)
	return s.user.Run(s.command("direnv", full...))
}

// conanProfile detects or regenerates the build profile (compiler,
// architecture, settings).
func (s *Setup) conanProfile() error {
	return s.runConan("profile", "detect", "--force")
}

// conanExportRecipe registers the project's patched ffmpeg recipe in the
// local cache under the pinned version and user namespace.
func (s *Setup) conanExportRecipe() error {
	return s.runConan("export",
		"--version="+s.cfg.RecipeVersion,
		"--user="+s.cfg.RecipeUser,
		s.cfg.RecipeDir)
}

// conanInstall resolves and builds the project's C++ dependency graph.
// ForceRelease dependencies are pinned to Release whatever the global
// build type; missing binaries may be built from source.
func (s *Setup) conanInstall() error {
	buildType := "Release"
	if s.flags.Debug {
		buildType = "Debug"
	}
	args := []string{"install", "--settings=build_type=" + buildType}
	for _, dep := range s.cfg.ForceRelease {
		args = append(args, "--settings="+dep+":build_type=Release")
	}
	args = append(args, "--build=missing", s.cfg.SourceDir)
	return s.runConan(args...)
}

// conanPruneCache drops cached packages that were not used for a day.
func (s *Setup) conanPruneCache() error {
	return s.runConan("remove", "--lru=1d", "--confirm", "*")
}
