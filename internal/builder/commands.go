// internal/builder/commands.go
package builder

import (
	"time"

	"scanforge/internal/core/domain"
)

// Timeouts range from fast probes to exhaustive scans. Kept as named
// constants so the table reads uniformly.
const (
	timeoutProbe  = 30 * time.Second
	timeoutShort  = 60 * time.Second
	timeoutMedium = 90 * time.Second
	timeoutLong   = 120 * time.Second
	timeoutScan   = 150 * time.Second
	timeoutDeep   = 180 * time.Second
	timeoutMax    = 300 * time.Second
)

// commands is the primary invocation table. Each entry branches on the
// target shape and on context resources; nil means not applicable.
// Tools that only make sense with stdin input (httprobe, qsreplace, ...)
// have no entry here and live in pipelineCommands instead.
var commands = map[string]buildFunc{
	// Network / port scanners: any network target.
	"nmap": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutLong, "nmap", "-sV", "-sC", "--top-ports", "100", "-T4", t.Host())
	},
	"masscan": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutLong, "masscan", t.Host(), "-p1-1000", "--rate=1000")
	},
	"rustscan": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutLong, "rustscan", "-a", t.Host(), "--", "-sV")
	},
	"naabu": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutMedium, "naabu", "-host", t.Host(), "-top-ports", "100")
	},

	// Web scanners: endpoint targets only.
	"nikto": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutScan, "nikto", "-h", t.Raw, "-maxtime", "120")
	},
	"wapiti": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutScan, "wapiti", "-u", t.Raw, "--flush-session", "-m", "common", "--max-scan-time", "120")
	},
	"whatweb": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutShort, "whatweb", "-v", t.Raw)
	},

	// SQL injection.
	"sqlmap": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutDeep, "sqlmap", "-u", t.Raw, "--batch", "--level=1", "--risk=1", "--timeout=30")
	},

	// XSS.
	"dalfox": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "dalfox", "url", t.Raw, "--silence")
	},
	"xsstrike": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "xsstrike", "-u", t.Raw, "--skip")
	},

	// SSTI.
	"tplmap": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "tplmap", "-u", t.Raw)
	},

	// Command injection.
	"commix": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "commix", "-u", t.Raw, "--batch", "--level=1")
	},

	// Directory discovery. gobuster/ffuf/wfuzz/kiterunner need the
	// context wordlist; without one they are not applicable.
	"gobuster": func(t domain.Target, ec *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() || !ec.HasWordlist() {
			return nil
		}
		return inv(timeoutLong, "gobuster", "dir", "-u", t.Raw, "-w", ec.Wordlist, "-q", "-t", "20")
	},
	"dirb": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "dirb", t.Raw, "-S", "-r")
	},
	"dirsearch": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "dirsearch", "-u", t.Raw, "--quiet", "-t", "20")
	},
	"feroxbuster": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutScan, "feroxbuster", "-u", t.Raw, "-q", "--time-limit", "120s")
	},

	// Fuzzers.
	"ffuf": func(t domain.Target, ec *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() || !ec.HasWordlist() {
			return nil
		}
		return inv(timeoutLong, "ffuf", "-u", t.Raw+"/FUZZ", "-w", ec.Wordlist, "-mc", "200,301,302,403", "-t", "20")
	},
	"wfuzz": func(t domain.Target, ec *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() || !ec.HasWordlist() {
			return nil
		}
		return inv(timeoutLong, "wfuzz", "-c", "--hc", "404", "-w", ec.Wordlist, t.Raw+"/FUZZ")
	},

	// CMS scanners.
	"wpscan": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutDeep, "wpscan", "--url", t.Raw, "--enumerate", "vp,vt,u", "--no-banner")
	},
	"droopescan": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "droopescan", "scan", "-u", t.Raw)
	},
	"joomscan": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "joomscan", "-u", t.Raw)
	},

	// Subdomain enumeration: registered domain of any network target.
	"subfinder": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutMedium, "subfinder", "-d", t.RegisteredDomain(), "-silent")
	},
	"amass": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutDeep, "amass", "enum", "-d", t.RegisteredDomain(), "-passive", "-timeout", "2")
	},
	"findomain": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutMedium, "findomain", "-t", t.RegisteredDomain(), "-q")
	},
	"chaos": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutShort, "chaos", "-d", t.RegisteredDomain(), "-silent")
	},
	"github_subdomains": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutMedium, "github-subdomains", "-d", t.RegisteredDomain())
	},
	"assetfinder": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutShort, "assetfinder", "--subs-only", t.RegisteredDomain())
	},

	// HTTP probing.
	"httpx_tool": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutShort, "httpx", "-u", t.Raw, "-silent", "-status-code", "-title", "-tech-detect")
	},

	// Vulnerability scanning.
	"nuclei": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutMax, "nuclei", "-u", t.Raw, "-severity", "low,medium,high,critical", "-silent", "-nc")
	},

	// Transport security.
	"sslscan": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutShort, "sslscan", "--no-colour", t.Host())
	},
	"sslyze": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutMedium, "sslyze", t.Host())
	},
	"testssl": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutLong, "testssl", "--quiet", "--color", "0", t.Host())
	},

	// Parameter discovery.
	"paramspider": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutMedium, "paramspider", "-d", t.RegisteredDomain())
	},
	"arjun": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "arjun", "-u", t.Raw, "-q")
	},

	// URL collection.
	"waybackurls": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutShort, "waybackurls", t.RegisteredDomain())
	},
	"gau": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutShort, "gau", t.RegisteredDomain())
	},
	"katana": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutLong, "katana", "-u", t.Raw, "-silent", "-d", "2")
	},

	// Visual recon.
	"gowitness": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() {
			return nil
		}
		return inv(timeoutShort, "gowitness", "single", t.Raw)
	},

	// DNS recon.
	"dnsx": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutShort, "dnsx", "-d", t.RegisteredDomain(), "-silent")
	},

	// API testing.
	"kiterunner": func(t domain.Target, ec *domain.ExecutionContext) *domain.Invocation {
		if !t.IsEndpoint() || !ec.HasWordlist() {
			return nil
		}
		return inv(timeoutLong, "kr", "brute", t.Raw, "-w", ec.Wordlist)
	},

	// SAST: local filesystem targets only.
	"semgrep": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsPath() {
			return nil
		}
		return inv(timeoutDeep, "semgrep", "scan", "--config=auto", "--quiet", t.Raw)
	},
	"bandit": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsPath() {
			return nil
		}
		return inv(timeoutLong, "bandit", "-r", t.Raw, "-q", "-f", "screen")
	},
	"brakeman": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsPath() {
			return nil
		}
		return inv(timeoutLong, "brakeman", "-q", "-p", t.Raw)
	},

	// Secret scanning: local filesystem targets only.
	"gitleaks": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsPath() {
			return nil
		}
		return inv(timeoutLong, "gitleaks", "detect", "--source", t.Raw, "--no-banner")
	},
	"trufflehog": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsPath() {
			return nil
		}
		return inv(timeoutLong, "trufflehog", "filesystem", t.Raw, "--no-update")
	},
	"detect_secrets": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsPath() {
			return nil
		}
		return inv(timeoutMedium, "detect-secrets", "scan", t.Raw)
	},

	// Exploit lookup.
	"searchsploit": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutProbe, "searchsploit", t.Host())
	},

	// Registered but never runnable standalone: hydra/medusa need a
	// protocol and credential lists, john/hashcat need a hash file,
	// subjack needs a subdomain list file, hakrawler only reads stdin.
	"hydra":     notApplicable,
	"medusa":    notApplicable,
	"john":      notApplicable,
	"hashcat":   notApplicable,
	"subjack":   notApplicable,
	"hakrawler": notApplicable,
}

func notApplicable(domain.Target, *domain.ExecutionContext) *domain.Invocation { return nil }

// pipelineCommands holds the stdin-mode invocations used by pipeline
// links. These tools consume a host/URL list on stdin and have no
// standalone run of their own (httprobe, qsreplace, unfurl) or gain a
// batch mode over their primary form (dnsx, httpx, nuclei).
var pipelineCommands = map[string]buildFunc{
	"httprobe": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutShort, "httprobe")
	},
	"dnsx": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutShort, "dnsx", "-silent")
	},
	"httpx_tool": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutMedium, "httpx", "-silent", "-status-code", "-title")
	},
	"nuclei": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutMax, "nuclei", "-silent", "-nc", "-severity", "low,medium,high,critical")
	},
	"qsreplace": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutProbe, "qsreplace")
	},
	"unfurl": func(t domain.Target, _ *domain.ExecutionContext) *domain.Invocation {
		if !t.IsNetwork() {
			return nil
		}
		return inv(timeoutProbe, "unfurl", "--unique", "domains")
	},
}
