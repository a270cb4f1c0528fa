// internal/registry/builtin.go
package registry

import "scanforge/internal/core/domain"

// builtinTools is the supported toolbox. Binary is the executable name
// the path resolver probes for; it differs from the id where the tool
// installs under another name (httpx_tool avoids colliding with the
// Python httpx library, kiterunner ships as kr).
var builtinTools = []domain.ToolDescriptor{
	// Network and port scanning.
	{ID: "nmap", Name: "Nmap", Category: "Network Scanner", Binary: "nmap"},
	{ID: "masscan", Name: "Masscan", Category: "Port Scanner", Binary: "masscan"},
	{ID: "rustscan", Name: "RustScan", Category: "Port Scanner", Binary: "rustscan"},
	{ID: "naabu", Name: "Naabu", Category: "Port Scanner", Binary: "naabu"},

	// Web scanning and fingerprinting.
	{ID: "nikto", Name: "Nikto", Category: "Web Scanner", Binary: "nikto"},
	{ID: "wapiti", Name: "Wapiti", Category: "Web Scanner", Binary: "wapiti"},
	{ID: "whatweb", Name: "WhatWeb", Category: "Fingerprinting", Binary: "whatweb"},
	{ID: "nuclei", Name: "Nuclei", Category: "Vulnerability Scanner", Binary: "nuclei"},

	// Injection testing.
	{ID: "sqlmap", Name: "SQLMap", Category: "SQL Injection", Binary: "sqlmap"},
	{ID: "dalfox", Name: "Dalfox", Category: "XSS Scanner", Binary: "dalfox"},
	{ID: "xsstrike", Name: "XSStrike", Category: "XSS Scanner", Binary: "xsstrike"},
	{ID: "tplmap", Name: "Tplmap", Category: "SSTI Scanner", Binary: "tplmap"},
	{ID: "commix", Name: "Commix", Category: "Command Injection", Binary: "commix"},

	// Directory and content discovery.
	{ID: "gobuster", Name: "Gobuster", Category: "Dir Scanner", Binary: "gobuster"},
	{ID: "dirb", Name: "Dirb", Category: "Dir Scanner", Binary: "dirb"},
	{ID: "dirsearch", Name: "Dirsearch", Category: "Dir Scanner", Binary: "dirsearch"},
	{ID: "feroxbuster", Name: "Feroxbuster", Category: "Dir Scanner", Binary: "feroxbuster"},
	{ID: "ffuf", Name: "Ffuf", Category: "Dir Discovery", Binary: "ffuf"},
	{ID: "wfuzz", Name: "Wfuzz", Category: "Dir Discovery", Binary: "wfuzz"},
	{ID: "kiterunner", Name: "Kiterunner", Category: "API Testing", Binary: "kr"},

	// Credential attacks.
	{ID: "hydra", Name: "Hydra", Category: "Brute Force", Binary: "hydra"},
	{ID: "medusa", Name: "Medusa", Category: "Brute Force", Binary: "medusa"},
	{ID: "john", Name: "John the Ripper", Category: "Password Cracker", Binary: "john"},
	{ID: "hashcat", Name: "Hashcat", Category: "Password Cracker", Binary: "hashcat"},

	// CMS scanning.
	{ID: "wpscan", Name: "WPScan", Category: "CMS Scanner", Binary: "wpscan"},
	{ID: "droopescan", Name: "Droopescan", Category: "CMS Scanner", Binary: "droopescan"},
	{ID: "joomscan", Name: "JoomScan", Category: "CMS Scanner", Binary: "joomscan"},

	// Subdomain enumeration.
	{ID: "subfinder", Name: "Subfinder", Category: "Subdomain", Binary: "subfinder"},
	{ID: "amass", Name: "Amass", Category: "OSINT/Recon", Binary: "amass"},
	{ID: "findomain", Name: "Findomain", Category: "Subdomain", Binary: "findomain"},
	{ID: "chaos", Name: "Chaos", Category: "Subdomain", Binary: "chaos"},
	{ID: "github_subdomains", Name: "GitHub Subdomains", Category: "Subdomain", Binary: "github-subdomains"},
	{ID: "assetfinder", Name: "Assetfinder", Category: "Subdomain", Binary: "assetfinder"},
	{ID: "subjack", Name: "Subjack", Category: "Subdomain Takeover", Binary: "subjack"},

	// Probing and DNS.
	{ID: "httpx_tool", Name: "Httpx", Category: "HTTP Probe", Binary: "httpx"},
	{ID: "httprobe", Name: "Httprobe", Category: "HTTP Probe", Binary: "httprobe"},
	{ID: "dnsx", Name: "Dnsx", Category: "DNS Recon", Binary: "dnsx"},

	// TLS assessment.
	{ID: "sslscan", Name: "SSLScan", Category: "SSL/TLS", Binary: "sslscan"},
	{ID: "sslyze", Name: "SSLyze", Category: "SSL/TLS", Binary: "sslyze"},
	{ID: "testssl", Name: "Testssl", Category: "SSL/TLS", Binary: "testssl"},

	// Parameter and URL discovery.
	{ID: "paramspider", Name: "ParamSpider", Category: "Param Discovery", Binary: "paramspider"},
	{ID: "arjun", Name: "Arjun", Category: "Param Discovery", Binary: "arjun"},
	{ID: "qsreplace", Name: "Qsreplace", Category: "Param Discovery", Binary: "qsreplace"},
	{ID: "unfurl", Name: "Unfurl", Category: "Web Recon", Binary: "unfurl"},

	// Crawling and archives.
	{ID: "waybackurls", Name: "Waybackurls", Category: "Web Crawler", Binary: "waybackurls"},
	{ID: "gau", Name: "Gau", Category: "Web Crawler", Binary: "gau"},
	{ID: "hakrawler", Name: "Hakrawler", Category: "Web Crawler", Binary: "hakrawler"},
	{ID: "katana", Name: "Katana", Category: "Web Crawler", Binary: "katana"},
	{ID: "gowitness", Name: "Gowitness", Category: "Visual Recon", Binary: "gowitness"},

	// Static analysis and secret scanning.
	{ID: "semgrep", Name: "Semgrep", Category: "SAST", Binary: "semgrep"},
	{ID: "bandit", Name: "Bandit", Category: "SAST", Binary: "bandit"},
	{ID: "brakeman", Name: "Brakeman", Category: "SAST", Binary: "brakeman"},
	{ID: "gitleaks", Name: "Gitleaks", Category: "Secret Scanner", Binary: "gitleaks"},
	{ID: "trufflehog", Name: "TruffleHog", Category: "Secret Scanner", Binary: "trufflehog"},
	{ID: "detect_secrets", Name: "Detect Secrets", Category: "Secret Scanner", Binary: "detect-secrets"},

	// Exploit lookup.
	{ID: "searchsploit", Name: "SearchSploit", Category: "Exploit Search", Binary: "searchsploit"},
}
