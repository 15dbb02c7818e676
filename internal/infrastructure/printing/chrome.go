// Package printing turns report HTML into PDF with headless Chrome over the
// DevTools protocol.
package printing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

var ErrEmptyHTML = errors.New("html content is empty")

// Paper is measured in inches. Zero fields take US Letter with half-inch
// margins.
type Paper struct {
	Width, Height, Margin float64
}

func (p Paper) orDefault() Paper {
	if p.Width <= 0 {
		p.Width = 8.5
	}
	if p.Height <= 0 {
		p.Height = 11
	}
	if p.Margin <= 0 {
		p.Margin = 0.5
	}
	return p
}

type Options struct {
	// RemoteURL attaches to a running Chrome (ws:// or http:// debugging
	// endpoint). Empty launches a local headless browser per Chrome.
	RemoteURL string
	// NoSandbox is needed when Chrome runs as root, as in most containers.
	NoSandbox bool
	Timeout   time.Duration
	Paper     Paper
	Logger    *zap.Logger
}

// Chrome shares one browser allocator between renderings; each RenderPDF
// call gets its own tab.
type Chrome struct {
	timeout time.Duration
	paper   Paper
	logger  *zap.Logger

	browser context.Context
	release context.CancelFunc
}

func NewChrome(opts Options) *Chrome {
	c := &Chrome{
		timeout: opts.Timeout,
		paper:   opts.Paper.orDefault(),
		logger:  opts.Logger,
	}
	if c.timeout <= 0 {
		c.timeout = 30 * time.Second
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	c.logger = c.logger.Named("printing")

	if opts.RemoteURL != "" {
		c.browser, c.release = chromedp.NewRemoteAllocator(context.Background(), opts.RemoteURL)
	} else {
		c.browser, c.release = chromedp.NewExecAllocator(context.Background(), execOptions(opts.NoSandbox)...)
	}
	return c
}

func execOptions(noSandbox bool) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if noSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	return opts
}

// RenderPDF loads html into a blank tab and prints it.
func (c *Chrome) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, ErrEmptyHTML
	}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	tab, closeTab := chromedp.NewContext(c.browser, chromedp.WithLogf(c.logger.Sugar().Debugf))
	defer closeTab()
	// chromedp contexts derive from the allocator, not from ctx
	defer context.AfterFunc(ctx, closeTab)()

	var pdf []byte
	err := chromedp.Run(tab,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) (err error) {
			pdf, _, err = c.printToPDF().Do(ctx)
			return err
		}),
	)
	switch {
	case err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded):
		return nil, fmt.Errorf("pdf rendering timed out after %v: %w", c.timeout, err)
	case err != nil:
		return nil, fmt.Errorf("render pdf: %w", err)
	case len(pdf) == 0:
		return nil, errors.New("chrome returned an empty pdf")
	}

	c.logger.Debug("PDF rendered", zap.Int("bytes", len(pdf)), zap.Duration("took", time.Since(start)))
	return pdf, nil
}

func (c *Chrome) printToPDF() *page.PrintToPDFParams {
	p := c.paper
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(p.Width).
		WithPaperHeight(p.Height).
		WithMarginTop(p.Margin).
		WithMarginRight(p.Margin).
		WithMarginBottom(p.Margin).
		WithMarginLeft(p.Margin)
}

// Close shuts the browser down, or detaches from a remote one.
func (c *Chrome) Close() error {
	c.release()
	return nil
}
