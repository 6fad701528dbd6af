package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hostpkg/hostpkg/pkg/core"
	"github.com/hostpkg/hostpkg/pkg/manager"
	"github.com/hostpkg/hostpkg/pkg/override"
)

// fakeRunner scripts command results and records every invocation
type fakeRunner struct {
	listOutput string
	listCode   int
	runCode    int

	runCalls    [][]string
	outputCalls [][]string
}

func (f *fakeRunner) Run(ctx context.Context, argv []string) (int, error) {
	f.runCalls = append(f.runCalls, argv)
	return f.runCode, nil
}

func (f *fakeRunner) Output(ctx context.Context, argv []string) (string, int, error) {
	f.outputCalls = append(f.outputCalls, argv)
	return f.listOutput, f.listCode, nil
}

func boolPtr(b bool) *bool { return &b }

func testDescriptor(t *testing.T, kind manager.Kind, family manager.OSFamily) manager.Descriptor {
	t.Helper()
	desc, err := manager.DescriptorOf(kind, family)
	if err != nil {
		t.Fatalf("DescriptorOf(%s, %s) failed: %v", kind, family, err)
	}
	return desc
}

func newTestEngine(t *testing.T, desc manager.Descriptor, runner Runner, privileged bool) *Engine {
	t.Helper()
	return New(desc, &Config{
		Runner:     runner,
		Probe:      func(string) bool { return false },
		Overrides:  override.NewResolver(filepath.Join(t.TempDir(), "overrides"), nil),
		Privileged: boolPtr(privileged),
	})
}

func TestValidateName(t *testing.T) {
	valid := []string{"vim", "gcc-13", "libssl3", "python3.12", "pkg_add", "A1._-"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "bogus/name", "two words", "a;b", "rm -rf", "$(x)", "a|b", "päck"}
	for _, name := range invalid {
		if err := ValidateName(name); !errors.Is(err, ErrInvalidPackageName) {
			t.Errorf("ValidateName(%q) = %v, want ErrInvalidPackageName", name, err)
		}
	}
}

func TestPerformInstall(t *testing.T) {
	desc := testDescriptor(t, manager.KindAptGet, manager.FamilyLinux)

	t.Run("absent package installs", func(t *testing.T) {
		runner := &fakeRunner{listOutput: "curl\nwget\n"}
		eng := newTestEngine(t, desc, runner, true)

		outcome, err := eng.Perform(context.Background(), "vim", core.OpInstall, false)
		if err != nil {
			t.Fatalf("Perform failed: %v", err)
		}
		if outcome.Status != core.StatusInstalled {
			t.Errorf("Status = %s, want %s", outcome.Status, core.StatusInstalled)
		}

		want := []string{"apt-get", "install", "vim", "--no-install-recommends", "-y"}
		if len(runner.runCalls) != 1 || !reflect.DeepEqual(runner.runCalls[0], want) {
			t.Errorf("run calls = %v, want [%v]", runner.runCalls, want)
		}
	})

	t.Run("present package short-circuits", func(t *testing.T) {
		runner := &fakeRunner{listOutput: "curl\nvim\nwget\n"}
		eng := newTestEngine(t, desc, runner, true)

		outcome, err := eng.Perform(context.Background(), "vim", core.OpInstall, false)
		if err != nil {
			t.Fatalf("Perform failed: %v", err)
		}
		if outcome.Status != core.StatusAlreadyPresent {
			t.Errorf("Status = %s, want %s", outcome.Status, core.StatusAlreadyPresent)
		}
		if len(runner.runCalls) != 0 {
			t.Errorf("no install command expected, got %v", runner.runCalls)
		}
	})

	t.Run("failed command classifies exit code", func(t *testing.T) {
		runner := &fakeRunner{listOutput: "", runCode: 100}
		eng := newTestEngine(t, desc, runner, true)

		outcome, err := eng.Perform(context.Background(), "vim", core.OpInstall, false)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			t.Fatalf("expected CommandError, got %v", err)
		}
		if cmdErr.Code != 100 {
			t.Errorf("CommandError.Code = %d, want 100", cmdErr.Code)
		}
		if outcome.Status != core.StatusFailed || outcome.ExitCode != 100 {
			t.Errorf("outcome = %+v, want failed with exit code 100", outcome)
		}
	})
}

func TestPerformUninstall(t *testing.T) {
	desc := testDescriptor(t, manager.KindPacman, manager.FamilyLinux)

	t.Run("present package uninstalls", func(t *testing.T) {
		runner := &fakeRunner{listOutput: "bash 5.2-1\nvim 9.1.0-1\n"}
		eng := newTestEngine(t, desc, runner, true)

		outcome, err := eng.Perform(context.Background(), "vim", core.OpUninstall, false)
		if err != nil {
			t.Fatalf("Perform failed: %v", err)
		}
		if outcome.Status != core.StatusUninstalled {
			t.Errorf("Status = %s, want %s", outcome.Status, core.StatusUninstalled)
		}

		want := []string{"pacman", "-R", "--noconfirm", "vim"}
		if len(runner.runCalls) != 1 || !reflect.DeepEqual(runner.runCalls[0], want) {
			t.Errorf("run calls = %v, want [%v]", runner.runCalls, want)
		}
	})

	t.Run("absent package short-circuits", func(t *testing.T) {
		runner := &fakeRunner{listOutput: "bash 5.2-1\n"}
		eng := newTestEngine(t, desc, runner, true)

		outcome, err := eng.Perform(context.Background(), "vim", core.OpUninstall, false)
		if err != nil {
			t.Fatalf("Perform failed: %v", err)
		}
		if outcome.Status != core.StatusAlreadyAbsent {
			t.Errorf("Status = %s, want %s", outcome.Status, core.StatusAlreadyAbsent)
		}
		if len(runner.runCalls) != 0 {
			t.Errorf("no uninstall command expected, got %v", runner.runCalls)
		}
	})
}

func TestPerformRejectsInvalidNameBeforeAnyCommand(t *testing.T) {
	desc := testDescriptor(t, manager.KindApt, manager.FamilyLinux)
	runner := &fakeRunner{}
	eng := newTestEngine(t, desc, runner, true)

	_, err := eng.Perform(context.Background(), "bogus/name", core.OpInstall, false)
	if !errors.Is(err, ErrInvalidPackageName) {
		t.Fatalf("expected ErrInvalidPackageName, got %v", err)
	}
	if len(runner.runCalls) != 0 || len(runner.outputCalls) != 0 {
		t.Error("no external command may run for an invalid name")
	}
}

func TestPerformOverrideSkipStopsBeforeProbing(t *testing.T) {
	desc := testDescriptor(t, manager.KindChoco, manager.FamilyWindows)
	runner := &fakeRunner{}

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "choco"), 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `{"install": false, "reason": "managed elsewhere"}`
	if err := os.WriteFile(filepath.Join(dir, "choco", "git.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	eng := New(desc, &Config{
		Runner:     runner,
		Overrides:  override.NewResolver(dir, nil),
		Privileged: boolPtr(true),
	})

	outcome, err := eng.Perform(context.Background(), "git", core.OpInstall, false)
	if err != nil {
		t.Fatalf("Perform failed: %v", err)
	}
	if outcome.Status != core.StatusSkipped || outcome.Reason != "managed elsewhere" {
		t.Errorf("outcome = %+v, want skip with reason", outcome)
	}
	if len(runner.runCalls) != 0 || len(runner.outputCalls) != 0 {
		t.Error("an override skip must not probe or invoke the manager")
	}
}

func TestIsInstalledQueryMode(t *testing.T) {
	desc := testDescriptor(t, manager.KindWinget, manager.FamilyWindows)

	t.Run("zero exit means installed", func(t *testing.T) {
		runner := &fakeRunner{listCode: 0}
		eng := newTestEngine(t, desc, runner, true)

		installed, err := eng.IsInstalled(context.Background(), "Git.Git")
		if err != nil {
			t.Fatalf("IsInstalled failed: %v", err)
		}
		if !installed {
			t.Error("expected installed")
		}

		want := []string{"winget", "list", "--exact", "--id", "Git.Git"}
		if len(runner.outputCalls) != 1 || !reflect.DeepEqual(runner.outputCalls[0], want) {
			t.Errorf("query calls = %v, want [%v]", runner.outputCalls, want)
		}
	})

	t.Run("non-zero exit means absent", func(t *testing.T) {
		runner := &fakeRunner{listCode: 1}
		eng := newTestEngine(t, desc, runner, true)

		installed, err := eng.IsInstalled(context.Background(), "Git.Git")
		if err != nil {
			t.Fatalf("IsInstalled failed: %v", err)
		}
		if installed {
			t.Error("expected absent")
		}
	})
}

func TestIsInstalledNeverCaches(t *testing.T) {
	desc := testDescriptor(t, manager.KindApk, manager.FamilyLinux)
	runner := &fakeRunner{listOutput: "vim\n"}
	eng := newTestEngine(t, desc, runner, true)

	for i := 0; i < 3; i++ {
		if _, err := eng.IsInstalled(context.Background(), "vim"); err != nil {
			t.Fatalf("IsInstalled failed: %v", err)
		}
	}
	if len(runner.outputCalls) != 3 {
		t.Errorf("expected 3 list invocations, got %d", len(runner.outputCalls))
	}
}

func TestElevation(t *testing.T) {
	desc := testDescriptor(t, manager.KindApt, manager.FamilyLinux)

	run := func(t *testing.T, privileged bool, wrappers ...string) []string {
		t.Helper()
		runner := &fakeRunner{}
		set := make(map[string]bool)
		for _, w := range wrappers {
			set[w] = true
		}
		eng := New(desc, &Config{
			Runner:     runner,
			Probe:      func(name string) bool { return set[name] },
			Overrides:  override.NewResolver(t.TempDir(), nil),
			Privileged: boolPtr(privileged),
		})
		if _, err := eng.Perform(context.Background(), "vim", core.OpInstall, true); err != nil {
			t.Fatalf("Perform failed: %v", err)
		}
		if len(runner.runCalls) != 1 {
			t.Fatalf("expected one run call, got %v", runner.runCalls)
		}
		return runner.runCalls[0]
	}

	t.Run("unprivileged prefers sudo", func(t *testing.T) {
		argv := run(t, false, "sudo", "doas")
		if argv[0] != "sudo" || argv[1] != "apt" {
			t.Errorf("argv = %v, want sudo prefix", argv)
		}
	})

	t.Run("falls back to doas", func(t *testing.T) {
		argv := run(t, false, "doas")
		if argv[0] != "doas" {
			t.Errorf("argv = %v, want doas prefix", argv)
		}
	})

	t.Run("privileged runs bare", func(t *testing.T) {
		argv := run(t, true, "sudo")
		if argv[0] != "apt" {
			t.Errorf("argv = %v, want bare apt", argv)
		}
	})

	t.Run("no wrapper runs bare", func(t *testing.T) {
		argv := run(t, false)
		if argv[0] != "apt" {
			t.Errorf("argv = %v, want bare apt", argv)
		}
	})

	t.Run("rootless manager never wrapped", func(t *testing.T) {
		brew := testDescriptor(t, manager.KindBrew, manager.FamilyDarwin)
		runner := &fakeRunner{}
		eng := New(brew, &Config{
			Runner:     runner,
			Probe:      func(string) bool { return true },
			Overrides:  override.NewResolver(t.TempDir(), nil),
			Privileged: boolPtr(false),
		})
		if _, err := eng.Perform(context.Background(), "wget", core.OpInstall, true); err != nil {
			t.Fatalf("Perform failed: %v", err)
		}
		if runner.runCalls[0][0] != "brew" {
			t.Errorf("argv = %v, want bare brew", runner.runCalls[0])
		}
	})
}

// statefulRunner models a manager whose installed set reflects the
// install and uninstall commands it has run
type statefulRunner struct {
	installed map[string]bool
}

func (s *statefulRunner) Run(ctx context.Context, argv []string) (int, error) {
	pkg := argv[len(argv)-1]
	switch argv[1] {
	case "add":
		s.installed[pkg] = true
	case "del":
		delete(s.installed, pkg)
	}
	return 0, nil
}

func (s *statefulRunner) Output(ctx context.Context, argv []string) (string, int, error) {
	var b strings.Builder
	for pkg := range s.installed {
		b.WriteString(pkg + "\n")
	}
	return b.String(), 0, nil
}

func TestInstallUninstallRoundTrip(t *testing.T) {
	desc := testDescriptor(t, manager.KindApk, manager.FamilyLinux)
	runner := &statefulRunner{installed: map[string]bool{}}
	eng := newTestEngine(t, desc, runner, true)
	ctx := context.Background()

	outcome, err := eng.Perform(ctx, "vim", core.OpInstall, false)
	if err != nil || outcome.Status != core.StatusInstalled {
		t.Fatalf("first install = %+v, %v", outcome, err)
	}

	outcome, err = eng.Perform(ctx, "vim", core.OpInstall, false)
	if err != nil || outcome.Status != core.StatusAlreadyPresent {
		t.Fatalf("second install = %+v, %v; must not install twice", outcome, err)
	}

	outcome, err = eng.Perform(ctx, "vim", core.OpUninstall, false)
	if err != nil || outcome.Status != core.StatusUninstalled {
		t.Fatalf("uninstall = %+v, %v", outcome, err)
	}

	installed, err := eng.IsInstalled(ctx, "vim")
	if err != nil {
		t.Fatalf("IsInstalled failed: %v", err)
	}
	if installed {
		t.Error("package must probe absent after the round trip")
	}
}
