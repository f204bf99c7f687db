package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/newgrounds"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// DefaultUserAgent is sent by rendered sessions unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"

// Default viewport and network idle window.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultIdleTime       = 500 * time.Millisecond
)

// Ensure Opener implements newgrounds.SessionOpener at compile time.
var _ newgrounds.SessionOpener = (*Opener)(nil)

// Opener launches a headless Chrome browser per session. Each session owns
// its browser process, which is killed on Close.
//
// Opener is safe for concurrent use.
type Opener struct {
	userAgent string
	width     int
	height    int
	stealth   bool
	idleTime  time.Duration
	timeout   time.Duration
	bin       string
}

// Option configures an Opener.
type Option func(*Opener)

// WithUserAgent sets the user agent of rendered pages.
func WithUserAgent(ua string) Option {
	return func(o *Opener) {
		o.userAgent = ua
	}
}

// WithViewport sets the page viewport size.
func WithViewport(width, height int) Option {
	return func(o *Opener) {
		o.width = width
		o.height = height
	}
}

// WithStealth injects the stealth evasions into every new document.
func WithStealth(enabled bool) Option {
	return func(o *Opener) {
		o.stealth = enabled
	}
}

// WithIdleTime sets how long the network must stay quiet after navigation
// before the page counts as rendered.
func WithIdleTime(d time.Duration) Option {
	return func(o *Opener) {
		o.idleTime = d
	}
}

// WithTimeout bounds each navigation, including the wait for network idle.
// Zero leaves navigation bounded only by the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(o *Opener) {
		o.timeout = d
	}
}

// WithBin sets an explicit browser binary instead of rod's lookup.
func WithBin(path string) Option {
	return func(o *Opener) {
		o.bin = path
	}
}

// NewOpener creates a new Opener.
func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		userAgent: DefaultUserAgent,
		width:     DefaultViewportWidth,
		height:    DefaultViewportHeight,
		idleTime:  DefaultIdleTime,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open implements newgrounds.SessionOpener.
func (o *Opener) Open(ctx context.Context) (newgrounds.Session, error) {
	return o.open(ctx)
}

func (o *Opener) open(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lnchr := launcher.New().
		Context(ctx).
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)
	if o.bin != "" {
		lnchr = lnchr.Bin(o.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	s := &Session{
		browser:  browser,
		launcher: lnchr,
		idleTime: o.idleTime,
		timeout:  o.timeout,
	}
	if err := s.setup(o); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Ensure Session implements newgrounds.Session at compile time.
var _ newgrounds.Session = (*Session)(nil)

// Session is a single browser page backed by its own browser process.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	idleTime time.Duration
	timeout  time.Duration
	closed   atomic.Bool
}

func (s *Session) setup(o *Opener) error {
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("creating page: %w", err)
	}
	s.page = page

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: o.userAgent}); err != nil {
		return fmt.Errorf("setting user agent: %w", err)
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             o.width,
		Height:            o.height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("setting viewport: %w", err)
	}
	if o.stealth {
		if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
			return fmt.Errorf("injecting stealth script: %w", err)
		}
	}
	return nil
}

// Navigate implements newgrounds.Session. It returns once the page has
// loaded and no requests were in flight for the idle window.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	p := s.page.Context(ctx)

	// The idle waiter must be installed before navigation starts.
	waitIdle := p.WaitRequestIdle(s.idleTime, nil, nil, nil)

	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("waiting for %s: %w", url, err)
	}
	waitIdle()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("waiting for %s: %w", url, err)
	}
	return nil
}

// Evaluate implements newgrounds.Session.
func (s *Session) Evaluate(ctx context.Context, script string, v any) error {
	res, err := s.page.Context(ctx).Eval(script)
	if err != nil {
		return fmt.Errorf("evaluating script: %w", err)
	}
	if err := res.Value.Unmarshal(v); err != nil {
		return newgrounds.Errorf(newgrounds.EINTERNAL, "decoding script result: %v", err)
	}
	return nil
}

// Close releases the page, the browser and its process.
// Close is safe to call multiple times.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) LauncherPID() int {
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}
