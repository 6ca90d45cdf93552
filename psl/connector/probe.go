package connector

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/hashicorp/go-version"
	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/satishbabariya/pslcheck/internal/debug"
)

// ErrProbeUnsupported is returned for providers that cannot be probed over database/sql.
var ErrProbeUnsupported = errors.New("probing is not supported for this provider")

// ServerInfo describes a running database server.
type ServerInfo struct {
	Provider string
	Raw      string
	Version  *version.Version
}

type probeTarget struct {
	driver string
	query  string
	dsn    func(string) (string, error)
}

var probeTargets = map[string]probeTarget{
	ProviderPostgres:    {driver: "postgres", query: "SHOW server_version", dsn: postgresDSN},
	"postgres":          {driver: "postgres", query: "SHOW server_version", dsn: postgresDSN},
	ProviderCockroachDB: {driver: "postgres", query: "SHOW server_version", dsn: postgresDSN},
	ProviderMySQL:       {driver: "mysql", query: "SELECT VERSION()", dsn: mysqlDSN},
	ProviderSQLite:      {driver: "sqlite3", query: "SELECT sqlite_version()", dsn: sqliteDSN},
}

// prisma-only URL parameters that drivers reject
var prismaURLParams = []string{"schema", "connection_limit", "pool_timeout", "pgbouncer", "socket_timeout", "connect_timeout"}

func postgresDSN(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for _, p := range prismaURLParams {
		q.Del(p)
	}
	u.RawQuery = q.Encode()
	return pq.ParseURL(u.String())
}

func mysqlDSN(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "mysql" {
		// already a driver DSN
		return raw, nil
	}
	cfg := mysql.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = u.Host + ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.Timeout = 5 * time.Second
	return cfg.FormatDSN(), nil
}

func sqliteDSN(raw string) (string, error) {
	return raw, nil
}

var leadingVersion = regexp.MustCompile(`^\d+(\.\d+)*`)

// ParseServerVersion extracts the numeric version from a server version
// string such as "8.0.36-log" or "15.4 (Debian 15.4-1.pgdg120+1)".
func ParseServerVersion(raw string) (*version.Version, error) {
	core := leadingVersion.FindString(strings.TrimSpace(raw))
	if core == "" {
		return nil, fmt.Errorf("unrecognized server version %q", raw)
	}
	return version.NewVersion(core)
}

// Probe connects to the database behind url and reads its server version.
func Probe(ctx context.Context, provider, rawURL string) (*ServerInfo, error) {
	target, ok := probeTargets[strings.ToLower(provider)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProbeUnsupported, provider)
	}

	dsn, err := target.dsn(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid %s url: %w", provider, err)
	}

	db, err := sql.Open(target.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", provider, err)
	}
	defer db.Close()

	var raw string
	if err := db.QueryRowContext(ctx, target.query).Scan(&raw); err != nil {
		return nil, fmt.Errorf("failed to query %s server version: %w", provider, err)
	}

	v, err := ParseServerVersion(raw)
	if err != nil {
		return nil, err
	}
	debug.Debug("Probed database server", "provider", provider, "version", v.String())
	return &ServerInfo{Provider: provider, Raw: raw, Version: v}, nil
}

type versionRule struct {
	provider   string
	constraint version.Constraints
	drop       Capability
}

var versionRules = []versionRule{
	{ProviderMySQL, version.MustConstraints(version.NewConstraint("< 5.6")), CapabilityFullTextIndex},
	{ProviderPostgres, version.MustConstraints(version.NewConstraint("< 10")), CapabilityUsingHashIndex},
}

// RefineForServer removes the capabilities the given server version lacks.
// It returns the refined connector and the capabilities that were dropped.
func RefineForServer(c Connector, v *version.Version) (Connector, []Capability) {
	caps := c.Capabilities()
	var dropped []Capability
	for _, rule := range versionRules {
		if c.ProviderName() != rule.provider || !caps.Has(rule.drop) {
			continue
		}
		if rule.constraint.Check(v) {
			caps = caps.Without(rule.drop)
			dropped = append(dropped, rule.drop)
		}
	}
	if len(dropped) == 0 {
		return c, nil
	}
	debug.Debug("Refined connector capabilities", "provider", c.ProviderName(), "version", v.String(), "dropped", dropped)
	return WithCapabilities(c, caps), dropped
}
