package probe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
)

const (
	defaultResolvConf = "/etc/resolv.conf"
	defaultTimeout    = 5 * time.Second

	// diagnosticBodyLimit caps how much of a response body ends up in logs.
	diagnosticBodyLimit = 4 << 10
)

type Config struct {
	// Nameserver is a host:port pair. Empty means the first server of
	// /etc/resolv.conf.
	Nameserver string
	Timeout    time.Duration
}

type prober struct {
	logger     *slog.Logger
	nameserver string
	dnsClient  *dns.Client
	httpClient *http.Client
}

// New creates an ExternalProber that resolves names with a plain DNS A query
// and talks HTTP without following redirects.
func New(logger *slog.Logger, cfg Config) (deployer.ExternalProber, error) {
	nameserver := cfg.Nameserver
	if nameserver == "" {
		ns, err := NameserverFromResolvConf(defaultResolvConf)
		if err != nil {
			return nil, err
		}

		nameserver = ns
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &prober{
		logger:     logger.With("component", "probe"),
		nameserver: nameserver,
		dnsClient:  &dns.Client{Timeout: timeout},
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

var _ deployer.ExternalProber = (*prober)(nil)

// NameserverFromResolvConf returns the first nameserver of a resolv.conf file
// as host:port.
func NameserverFromResolvConf(path string) (string, error) {
	conf, err := dns.ClientConfigFromFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if len(conf.Servers) == 0 {
		return "", fmt.Errorf("%s: %w", path, ErrNoNameserver)
	}

	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}

// ResolveQuery returns the IPv4 addresses of host. An NXDOMAIN answer is not
// an error: the name is simply not propagated yet.
func (p *prober) ResolveQuery(ctx context.Context, host string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), dns.TypeA)
	msg.RecursionDesired = true

	in, _, err := p.dnsClient.ExchangeContext(ctx, msg, p.nameserver)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", host, err)
	}

	switch in.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s for %s", ErrDNSRcode, dns.RcodeToString[in.Rcode], host)
	}

	addrs := make([]string, 0, len(in.Answer))

	for _, rr := range in.Answer {
		if a, ok := rr.(*dns.A); ok {
			addrs = append(addrs, a.A.String())
		}
	}

	p.logger.DebugContext(ctx, "dns answer", "host", host, "addrs", addrs)

	return addrs, nil
}

// HeadQuery returns the status line ("HTTP/1.1 404 Not Found") of a HEAD
// request.
func (p *prober) HeadQuery(ctx context.Context, url string) (string, error) {
	resp, err := p.do(ctx, http.MethodHead, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return statusLine(resp), nil
}

// GetQuery returns the status line followed by the start of the body.
func (p *prober) GetQuery(ctx context.Context, url string) (string, error) {
	resp, err := p.do(ctx, http.MethodGet, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, diagnosticBodyLimit))
	if err != nil {
		return statusLine(resp), fmt.Errorf("read body: %w", err)
	}

	var b strings.Builder

	b.WriteString(statusLine(resp))
	b.WriteString("\n")
	b.Write(body)

	return b.String(), nil
}

func (p *prober) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}

	return resp, nil
}

func statusLine(resp *http.Response) string {
	return resp.Proto + " " + resp.Status
}
