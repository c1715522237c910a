package gmaps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"whatsapp-feedback-bot/internal/ports/output"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
)

const (
	signInURL = "https://accounts.google.com/signin"
	mapsURL   = "https://www.google.com/maps"
)

// Selectors for the Google sign-in and Maps review surfaces. Google serves
// localized aria-labels, so the review selectors match both the Spanish and
// English variants.
const (
	selEmailInput    = `input[name="identifier"]`
	selEmailNext     = `#identifierNext`
	selPasswordInput = `input[name="password"]`
	selPasswordNext  = `#passwordNext`

	selSearchBox   = `#searchboxinput`
	selFirstResult = `[data-result-index="0"]`

	selReviewsButton     = `button[aria-label*="reseña"], button[aria-label*="review"]`
	selWriteReviewButton = `button[aria-label*="Escribir reseña"], button[aria-label*="Write a review"]`
	selReviewTextArea    = `textarea[aria-label*="reseña"], textarea[aria-label*="review"]`
	selFileInput         = `input[type="file"]`
	selSubmitButton      = `button[aria-label*="Enviar"], button[aria-label*="Submit"]`
)

// Config struct - Browser automation settings
type Config struct {
	Email       string
	Password    string
	Headless    bool
	NoSandbox   bool
	StepTimeout time.Duration // bound for each wait-and-interact step
}

// Compile-time checks against the output ports
var (
	_ output.MapsAutomationFactory = (*Factory)(nil)
	_ output.MapsAutomation        = (*Automation)(nil)
)

// Factory struct - Opens one isolated browser context per submission
type Factory struct {
	cfg Config
}

// NewFactory func - Creates new automation session factory
func NewFactory(cfg Config) *Factory {
	if cfg.StepTimeout <= 0 {
		cfg.StepTimeout = 10 * time.Second
	}
	return &Factory{cfg: cfg}
}

// NewSession launches a fresh browser for a single review submission
func (f *Factory) NewSession(ctx context.Context) (output.MapsAutomation, error) {
	l := launcher.New().
		Headless(f.cfg.Headless).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-dev-shm-usage")
	if f.cfg.NoSandbox {
		l = l.NoSandbox(true)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		l.Cleanup()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	logrus.Infof("Browser automation session started (headless=%v)", f.cfg.Headless)

	return &Automation{
		cfg:      f.cfg,
		launcher: l,
		browser:  browser,
		page:     page,
	}, nil
}

// Automation struct - Output adapter driving one Google Maps review
// submission through a rod-controlled Chrome instance
type Automation struct {
	cfg      Config
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page

	closeOnce sync.Once
	tmpDirs   []string
}

// Authenticate - Signs in to the configured Google account
func (a *Automation) Authenticate(ctx context.Context) error {
	logrus.Info("Signing in to Google...")

	if err := a.navigate(ctx, signInURL); err != nil {
		return err
	}

	if err := a.fill(ctx, selEmailInput, a.cfg.Email); err != nil {
		return fmt.Errorf("email input: %w", err)
	}
	if err := a.click(ctx, selEmailNext); err != nil {
		return fmt.Errorf("email next: %w", err)
	}

	if err := a.fill(ctx, selPasswordInput, a.cfg.Password); err != nil {
		return fmt.Errorf("password input: %w", err)
	}
	if err := a.click(ctx, selPasswordNext); err != nil {
		return fmt.Errorf("password next: %w", err)
	}

	if err := a.page.Context(ctx).WaitLoad(); err != nil {
		return fmt.Errorf("post-login load: %w", err)
	}

	logrus.Info("Google sign-in completed")
	return nil
}

// LocatePlace - Searches Maps for the place and opens the first result
func (a *Automation) LocatePlace(ctx context.Context, name string) error {
	logrus.Infof("Searching for place: %s", name)

	if err := a.navigate(ctx, mapsURL); err != nil {
		return err
	}

	searchBox, err := a.element(ctx, selSearchBox)
	if err != nil {
		return fmt.Errorf("search box: %w", err)
	}
	if err := searchBox.Input(name); err != nil {
		return fmt.Errorf("search input: %w", err)
	}
	if err := searchBox.Type(input.Enter); err != nil {
		return fmt.Errorf("search submit: %w", err)
	}

	if err := a.click(ctx, selFirstResult); err != nil {
		return fmt.Errorf("first result: %w", err)
	}

	logrus.Infof("Place %q located", name)
	return nil
}

// ComposeReview - Opens the review dialog, sets the rating, enters the text
// and attaches photos. Photo attachment is best-effort per reference.
func (a *Automation) ComposeReview(ctx context.Context, rating int, text string, photoRefs []string) error {
	logrus.Infof("Composing review: rating=%d photos=%d", rating, len(photoRefs))

	if err := a.click(ctx, selReviewsButton); err != nil {
		return fmt.Errorf("reviews button: %w", err)
	}
	if err := a.click(ctx, selWriteReviewButton); err != nil {
		return fmt.Errorf("write review button: %w", err)
	}

	starSelector := fmt.Sprintf(`button[aria-label*="%d estrella"], button[aria-label*="%d star"]`, rating, rating)
	if err := a.click(ctx, starSelector); err != nil {
		return fmt.Errorf("star rating: %w", err)
	}

	textArea, err := a.element(ctx, selReviewTextArea)
	if err != nil {
		return fmt.Errorf("review text area: %w", err)
	}
	if err := textArea.Input(text); err != nil {
		return fmt.Errorf("review text: %w", err)
	}

	a.attachPhotos(ctx, photoRefs)
	return nil
}

// Submit - Posts the composed review
func (a *Automation) Submit(ctx context.Context) error {
	if err := a.click(ctx, selSubmitButton); err != nil {
		return fmt.Errorf("submit button: %w", err)
	}
	if err := a.page.Context(ctx).WaitLoad(); err != nil {
		return fmt.Errorf("post-submit load: %w", err)
	}
	logrus.Info("Review submitted")
	return nil
}

// Close - Releases the browser context. Idempotent: only the first call
// tears anything down.
func (a *Automation) Close() error {
	a.closeOnce.Do(func() {
		if err := a.browser.Close(); err != nil {
			logrus.Errorf("Failed to close browser: %v", err)
		}
		a.launcher.Cleanup()
		for _, dir := range a.tmpDirs {
			if err := os.RemoveAll(dir); err != nil {
				logrus.Errorf("Failed to remove temp photo dir %s: %v", dir, err)
			}
		}
		logrus.Info("Browser automation session closed")
	})
	return nil
}

// attachPhotos downloads each media reference and feeds it to the file
// input. A failure on one photo is logged and skipped; the review itself
// proceeds without it.
func (a *Automation) attachPhotos(ctx context.Context, photoRefs []string) {
	for _, ref := range photoRefs {
		path, err := a.downloadPhoto(ctx, ref)
		if err != nil {
			logrus.Errorf("Skipping photo %s: %v", ref, err)
			continue
		}

		fileInput, err := a.element(ctx, selFileInput)
		if err != nil {
			logrus.Errorf("Skipping photo %s: file input not found: %v", ref, err)
			continue
		}
		if err := fileInput.SetFiles([]string{path}); err != nil {
			logrus.Errorf("Skipping photo %s: %v", ref, err)
		}
	}
}

// downloadPhoto fetches a media URL into a temp file so the browser's file
// input can consume it
func (a *Automation) downloadPhoto(ctx context.Context, url string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, a.cfg.StepTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build photo request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("photo download returned status %d", resp.StatusCode)
	}

	dir, err := os.MkdirTemp("", "review-photo-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	a.tmpDirs = append(a.tmpDirs, dir)

	path := filepath.Join(dir, "photo.jpg")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	return path, nil
}

// navigate loads a URL and waits for the page to settle
func (a *Automation) navigate(ctx context.Context, url string) error {
	page := a.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load %s: %w", url, err)
	}
	return nil
}

// element waits for a selector within the per-step timeout
func (a *Automation) element(ctx context.Context, selector string) (*rod.Element, error) {
	return a.page.Context(ctx).Timeout(a.cfg.StepTimeout).Element(selector)
}

// fill waits for an input and types the value into it
func (a *Automation) fill(ctx context.Context, selector, value string) error {
	el, err := a.element(ctx, selector)
	if err != nil {
		return err
	}
	return el.Input(value)
}

// click waits for an element and left-clicks it
func (a *Automation) click(ctx context.Context, selector string) error {
	el, err := a.element(ctx, selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}
