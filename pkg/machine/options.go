package machine

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

const (
	defaultUnixUser    = "root"
	defaultWindowsUser = "Administrator"

	defaultWinRMScheme = "negotiate"
	winRMSchemeSSL     = "ssl"
	winRMPortPlain     = 5985
	winRMPortSSL       = 5986
)

// Options is the transport section of the driver configuration, shared by
// every machine the driver manages.
type Options struct {
	IsWindows      bool   `yaml:"is_windows"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	WinRMTransport string `yaml:"winrm_transport"`
	WinRMPort      int    `yaml:"winrm_port"`
	UseHostname    bool   `yaml:"use_hostname"`
	SSHKeyPath     string `yaml:"ssh_key_path"`
	SSHKeyName     string `yaml:"ssh_key_name"`
	SSHGateway     string `yaml:"ssh_gateway"`

	// Extra is merged into the resolved transport options verbatim, after
	// every computed default.
	Extra map[string]any `yaml:"extra"`
}

// Reference carries the free-form per-machine overrides stored on a
// MachineSpec. Machine-level values win over everything computed from
// Options.
type Reference struct {
	Username   string         `yaml:"username"`
	Sudo       *bool          `yaml:"sudo"`
	SSHGateway string         `yaml:"ssh_gateway"`
	Overrides  map[string]any `yaml:"overrides"`
}

// UseSudo decides the privilege-escalation prefix: an explicit override is
// honored, otherwise any non-root user gets sudo.
func UseSudo(username string, override *bool) bool {
	if override != nil {
		return *override
	}
	return username != defaultUnixUser
}

func (b *Builder) sshOptions(info ResourceInfo, ref Reference) (TransportOptions, error) {
	username := firstNonEmpty(ref.Username, b.Options.Username, defaultUnixUser)

	opts := TransportOptions{
		"user":           username,
		"host_key_alias": HostKeyAlias(info.ID),
		"sudo":           UseSudo(username, ref.Sudo),
	}

	if b.Options.Password != "" {
		opts["password"] = b.Options.Password
	} else {
		material, err := b.sshKeyMaterial()
		if err != nil {
			return nil, err
		}
		opts["key_data"] = material
	}

	if gateway := firstNonEmpty(ref.SSHGateway, b.Options.SSHGateway); gateway != "" {
		opts["ssh_gateway"] = gateway
	}

	merge(opts, b.Options.Extra)
	merge(opts, ref.Overrides)
	return opts, nil
}

// sshKeyMaterial resolves the private key: an on-disk path wins, then a
// named key through the external resolver. No password and no key is a
// configuration error.
func (b *Builder) sshKeyMaterial() (string, error) {
	if b.Options.SSHKeyPath != "" {
		raw, err := os.ReadFile(b.Options.SSHKeyPath)
		if err != nil {
			return "", fmt.Errorf("failed reading ssh key %s: %w", b.Options.SSHKeyPath, err)
		}
		if _, err := ssh.ParsePrivateKey(raw); err != nil {
			return "", fmt.Errorf("invalid ssh key %s: %w", b.Options.SSHKeyPath, err)
		}
		return string(raw), nil
	}

	if b.Options.SSHKeyName != "" {
		if b.Keys == nil {
			return "", NewMissingCredentialError()
		}
		material, err := b.Keys.ResolveKey(b.Options.SSHKeyName)
		if err != nil {
			return "", fmt.Errorf("failed resolving ssh key %q: %w", b.Options.SSHKeyName, err)
		}
		return material, nil
	}

	return "", NewMissingCredentialError()
}

func (b *Builder) winrmOptions(info ResourceInfo, ref Reference) TransportOptions {
	scheme := b.Options.WinRMTransport
	if scheme == "" {
		scheme = defaultWinRMScheme
	}

	port := b.Options.WinRMPort
	if port == 0 {
		port = winRMPortPlain
		if scheme == winRMSchemeSSL {
			port = winRMPortSSL
		}
	}

	opts := TransportOptions{
		"user":            firstNonEmpty(ref.Username, b.Options.Username, defaultWindowsUser),
		"password":        b.Options.Password,
		"winrm_transport": scheme,
		"port":            port,
	}

	merge(opts, b.Options.Extra)
	merge(opts, ref.Overrides)
	return opts
}

func merge(dst TransportOptions, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
