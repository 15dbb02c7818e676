package printing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaper_OrDefault(t *testing.T) {
	assert.Equal(t, Paper{Width: 8.5, Height: 11, Margin: 0.5}, Paper{}.orDefault())
	assert.Equal(t, Paper{Width: 8.27, Height: 11.69, Margin: 0.5}, Paper{Width: 8.27, Height: 11.69}.orDefault())
}

func TestNewChrome_Defaults(t *testing.T) {
	c := NewChrome(Options{RemoteURL: "ws://127.0.0.1:1"})
	defer c.Close()

	assert.Equal(t, 30*time.Second, c.timeout)
	assert.Equal(t, 8.5, c.paper.Width)
	assert.NotNil(t, c.logger)
}

func TestExecOptions_NoSandbox(t *testing.T) {
	assert.Len(t, execOptions(true), len(execOptions(false))+1)
}

func TestPrintToPDF(t *testing.T) {
	c := &Chrome{paper: Paper{Margin: 0.25}.orDefault()}
	p := c.printToPDF()
	assert.True(t, p.PrintBackground)
	assert.Equal(t, 8.5, p.PaperWidth)
	assert.Equal(t, 11.0, p.PaperHeight)
	assert.Equal(t, 0.25, p.MarginTop)
	assert.Equal(t, 0.25, p.MarginLeft)
}

func TestRenderPDF_EmptyHTML(t *testing.T) {
	c := NewChrome(Options{RemoteURL: "ws://127.0.0.1:1"})
	defer func() { require.NoError(t, c.Close()) }()

	_, err := c.RenderPDF(context.Background(), " \n ")
	assert.ErrorIs(t, err, ErrEmptyHTML)
}
