package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/relationest/internal/client/router"
	"github.com/dmitrijs2005/relationest/internal/common"
)

// Go navigates to target, a path with an optional query, and shows the view
// that ends up current. A refused protected view leaves the login view on
// screen and returns the router's error.
func (a *App) Go(ctx context.Context, target string) error {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil || u.Path == "" {
		return fmt.Errorf("%w: bad path %q", common.ErrValidation, target)
	}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}

	navErr := a.router.Navigate(ctx, u.Path, u.Query())
	if errors.Is(navErr, router.ErrUnknownRoute) {
		return navErr
	}
	if err := a.render(ctx); err != nil {
		return err
	}
	return navErr
}

// enter navigates to path unless it is already current, keeping the current
// query in that case. A protected view is guarded again even when current:
// the session may have expired while it was on screen.
func (a *App) enter(ctx context.Context, path string) error {
	if a.router.Current().Path != path {
		return a.router.Navigate(ctx, path, nil)
	}
	if route, ok := a.router.Route(path); ok && route.Protected && !a.guard.RequireAuthOrRedirect(ctx, path) {
		return fmt.Errorf("%w: %s", router.ErrAuthRequired, path)
	}
	return nil
}

func (a *App) render(ctx context.Context) error {
	cur := a.router.Current()
	route, _ := a.router.Route(cur.Path)
	fmt.Fprintf(a.out, "\n== %s ==\n", route.Title)

	switch cur.Path {
	case common.LoginPath:
		if hint := cur.Query.Get(common.ReturnToParam); hint != "" {
			fmt.Fprintf(a.out, "Please login to open %s.\n", hint)
		}
		fmt.Fprintln(a.out, "Type 'login' to sign in or 'signup' to create an account.")
	case common.SignupPath:
		fmt.Fprintln(a.out, "Type 'signup' to create an account.")
	case common.MainPath:
		fmt.Fprintln(a.out, "Tell us about your relationship and get advice.")
		fmt.Fprintln(a.out, "Type 'chat' to start, 'continue' to follow up, 'history' for past chats.")
	case common.HistoryPath:
		return a.listChats(ctx)
	case common.ContactPath:
		fmt.Fprintln(a.out, "Type 'contact' to send us a message.")
	case common.AboutPath:
		fmt.Fprintln(a.out, aboutText)
	case common.FAQPath:
		for _, f := range faqs {
			fmt.Fprintf(a.out, "\n%s\n  %s\n", f.question, f.answer)
		}
	case common.PrivacyPath:
		fmt.Fprintln(a.out, privacyText)
	}
	return nil
}

const aboutText = `RelatioNest combines artificial intelligence with relationship psychology
to give couples and individuals personal guidance.

  Innovation      AI guidance that keeps improving
  Privacy         your data stays protected and confidential
  Accessibility   relationship advice for everyone, everywhere`

const privacyText = `We collect what you give us: account details, the questions you ask and
messages you send to support. We use it to run and improve the service and
never sell it. You may access, correct or delete your data at any time.

Questions: privacy@relationest.com`

var faqs = []struct {
	question string
	answer   string
}{
	{"What is RelatioNest?", "A relationship guidance service that pairs AI with relationship psychology."},
	{"How does it work?", "Describe your situation in the advice form; the advisor answers and you can follow up."},
	{"Is my information secure?", "Conversations are confidential and never shared with third parties."},
	{"Which issues can it help with?", "Communication, trust, conflict, intimacy, personal growth and more."},
	{"Can I use my own AI API keys?", "Yes. The advice form accepts optional Gemini, OpenAI or Anthropic keys."},
}
