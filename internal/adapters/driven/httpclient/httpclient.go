// Package httpclient builds the HTTP clients shared by the outbound adapters.
package httpclient

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/henvic/httpretty"
	"golang.org/x/term"
)

// maxLoggedBody caps how much of a response body verbose logging prints.
const maxLoggedBody = 50000

// Config controls client construction.
type Config struct {
	// Timeout bounds each request, including reading the body.
	Timeout time.Duration

	// Verbose dumps request and response traffic to LogOutput.
	Verbose bool

	// LogOutput receives traffic dumps (default: os.Stderr).
	LogOutput io.Writer

	// Transport is the underlying round tripper (default: http.DefaultTransport).
	Transport http.RoundTripper
}

// New returns an *http.Client for the configuration.
func New(cfg Config) *http.Client {
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if cfg.Verbose {
		out := cfg.LogOutput
		if out == nil {
			out = os.Stderr
		}
		transport = trafficLogger(out)(transport)
	}
	return &http.Client{Timeout: cfg.Timeout, Transport: transport}
}

func trafficLogger(out io.Writer) func(http.RoundTripper) http.RoundTripper {
	logger := &httpretty.Logger{
		Time:            true,
		TLS:             false,
		Colors:          isTerminal(out),
		RequestHeader:   true,
		RequestBody:     true,
		ResponseHeader:  true,
		ResponseBody:    true,
		Formatters:      []httpretty.Formatter{&httpretty.JSONFormatter{}},
		MaxResponseBody: maxLoggedBody,
	}
	logger.SetOutput(out)
	return logger.RoundTripper
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
