package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ceramicstudio/create-ceramic-app/internal/branding"
	"github.com/ceramicstudio/create-ceramic-app/internal/npm"
	"github.com/ceramicstudio/create-ceramic-app/internal/project"
	"github.com/ceramicstudio/create-ceramic-app/internal/ui"
)

// Fetcher materializes the example repository in a directory.
type Fetcher interface {
	Clone(ctx context.Context, repoURL, dir string) error
}

// Installer runs the package manager inside the project directory.
type Installer interface {
	Install(ctx context.Context, dir string) error
	Dev(ctx context.Context, dir string) error
}

// Inspector reports non-fatal problems with a freshly cloned project.
type Inspector interface {
	Inspect(ctx context.Context, dir string) []string
}

// Orchestrator runs one scaffold session.
type Orchestrator struct {
	UI        *ui.Prompter
	Fetcher   Fetcher
	Installer Installer
	// Inspector is optional.
	Inspector Inspector
	Log       *slog.Logger

	RepoURL     string
	DefaultName string
	DocsURL     string
	LocalURL    string

	// Getwd resolves the directory the project is created in; defaults to
	// os.Getwd.
	Getwd func() (string, error)
}

// New returns an Orchestrator wired to the built-in example app endpoints.
func New(p *ui.Prompter, f Fetcher, i Installer, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		UI:          p,
		Fetcher:     f,
		Installer:   i,
		Log:         log,
		RepoURL:     branding.ExampleRepoURL(),
		DefaultName: branding.DefaultProjectName(),
		DocsURL:     branding.DocsURL(),
		LocalURL:    branding.LocalURL(),
		Getwd:       os.Getwd,
	}
}

// Run executes the session. It returns ui.ErrCanceled when the user aborts
// a prompt; every other phase failure is logged and Run returns nil. The
// returned session is nil only if no name was accepted.
func (o *Orchestrator) Run(ctx context.Context) (*project.Session, error) {
	o.UI.Intro(ui.BgGreen(" 🧡 Welcome! Let us build you a ComposeDB example app. "))

	name, err := o.askName(ctx)
	if err != nil {
		return nil, o.canceled(err)
	}

	getwd := o.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	cwd, err := getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	session, err := project.NewSession(cwd, name)
	if err != nil {
		return nil, err
	}

	if !o.clone(ctx, session) {
		return session, nil
	}

	if o.Inspector != nil {
		for _, w := range o.Inspector.Inspect(ctx, session.Dir) {
			o.UI.Warn(w)
		}
	}

	installed := o.install(ctx, session)
	if ctx.Err() != nil {
		return session, o.canceled(ui.ErrCanceled)
	}
	o.showSummary(session, installed)

	launch, err := o.askLaunch(ctx)
	if err != nil {
		return session, o.canceled(err)
	}
	session.Launch = launch

	if launch == project.LaunchYes {
		o.launch(ctx, session)
	} else {
		o.showManualInstructions(session)
	}
	return session, nil
}

func (o *Orchestrator) canceled(err error) error {
	if errors.Is(err, ui.ErrCanceled) {
		o.UI.Cancel("Canceling.")
	}
	return err
}

func (o *Orchestrator) askName(ctx context.Context) (string, error) {
	input, err := o.UI.Text(ctx, ui.TextPrompt{
		Message:     "What is the name of your project?",
		Placeholder: o.DefaultName,
		Validate:    project.ValidateName,
	})
	if err != nil {
		return "", err
	}
	return project.ResolveName(input, o.DefaultName), nil
}

// clone fetches the repository into the session directory and reports
// whether the session should continue.
func (o *Orchestrator) clone(ctx context.Context, s *project.Session) bool {
	sp := o.UI.Spinner()
	sp.Start("Cloning CeramicDB Example App from repository...")

	if err := o.Fetcher.Clone(ctx, o.RepoURL, s.Dir); err != nil {
		sp.Fail("Failed to clone repository")
		o.Log.Error("Error occurred while cloning the repository", "repo", o.RepoURL, "err", err)
		return false
	}

	sp.Stop(ui.Green("✅ Repository cloned. ⬇️  Now installing dependencies..."))
	return true
}

// install runs the package install and reports whether it succeeded.
// Failure does not stop the session.
func (o *Orchestrator) install(ctx context.Context, s *project.Session) bool {
	o.UI.Step("⬇️ Installing dependencies...")

	if err := o.Installer.Install(ctx, s.Dir); err != nil {
		if ctx.Err() != nil {
			o.Log.Info("dependency install interrupted", "dir", s.Dir)
			return false
		}
		o.Log.Error("Error occurred while installing dependencies", "dir", s.Dir, "err", err)
		o.UI.Warn("Dependencies may be missing or incomplete.")
		return false
	}

	o.UI.Step(ui.Green("✅ Dependencies installed."))
	return true
}

func (o *Orchestrator) showSummary(s *project.Session, installed bool) {
	deps := ""
	if !installed {
		deps = fmt.Sprintf("\n    - Dependencies: %s", ui.Yellow("Install failed, run npm install"))
	}
	o.UI.Note(fmt.Sprintf(`
    Your example app will have this default configuration:

    - Project Name: %s
    - Project Directory: %s
    - Network: %s
    - Ceramic %s
    - ComposeDB %s%s

    If you want to configure all these aspects of your Ceramic environment,
    please use Wheel to generate a development environment.
    Instructions for Wheel: %s
    `,
		ui.Green(s.Name),
		ui.Green(s.Dir),
		ui.Green("InMemory"),
		ui.Green("Included"),
		ui.Green("Included"),
		deps,
		ui.BgBlue(o.DocsURL),
	))
}

func (o *Orchestrator) askLaunch(ctx context.Context) (project.Launch, error) {
	answer, err := o.UI.Select(ctx, ui.SelectPrompt{
		Message: "🎉  Your Ceramic app with ComposeDB is ready! Ready to launch it now?",
		Initial: string(project.LaunchYes),
		Options: []ui.Option{
			{Label: "Yes", Value: string(project.LaunchYes)},
			{Label: "No", Value: string(project.LaunchNo)},
		},
	})
	if err != nil {
		return "", err
	}
	return project.Launch(answer), nil
}

// launch blocks for the lifetime of the dev server.
func (o *Orchestrator) launch(ctx context.Context, s *project.Session) {
	o.UI.Outro("🏎️  Launching your example app...")

	if err := o.Installer.Dev(ctx, s.Dir); err != nil {
		if ctx.Err() != nil {
			o.Log.Info("dev server stopped", "dir", s.Dir)
			return
		}
		o.Log.Error("Error occurred while starting the example app", "dir", s.Dir, "err", err)
	}
}

func (o *Orchestrator) showManualInstructions(s *project.Session) {
	o.UI.Note(fmt.Sprintf(`
    You don't have to launch the example app right now. You can do it later. It's easy!

    Here's how to launch the example app manually, when you're ready:
    1. %s
    2. %s
    3. Open %s in your browser
    4. 🎉  Enjoy!
    `,
		ui.Inverse("cd "+s.Name),
		ui.Inverse(npm.Command()),
		ui.BgBlue(o.LocalURL),
	))
	o.UI.Outro(ui.BgBlue("🙏 Thanks and happy coding!"))
}
