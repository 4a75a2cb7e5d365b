// Utilities for parsing cURL commands copied from browser DevTools.
package shared

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
)

var (
	headerRegex = regexp.MustCompile(`-H\s+'([^']+)'|-H\s+"([^"]+)"`)
	cookieRegex = regexp.MustCompile(`-b\s+'([^']+)'|-b\s+"([^"]+)"`)
	urlRegex    = regexp.MustCompile(`curl\s+'(https?://[^']+)'|curl\s+"(https?://[^"]+)"|curl\s+(https?://\S+)`)
)

// CurlHeaders represents parsed headers, cookies and target URL from a cURL command.
type CurlHeaders struct {
	Headers map[string]string
	Cookie  string
	URL     string
}

// ParseCurlFile reads a .sh file containing a cURL command and extracts headers.
func ParseCurlFile(filepath string) (*CurlHeaders, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read curl file: %w", err)
	}

	return ParseCurlCommand(content)
}

// ParseCurlCommand parses a cURL command string and extracts headers.
func ParseCurlCommand(data []byte) (*CurlHeaders, error) {
	curlCmd := string(data)
	curlCmd = strings.ReplaceAll(curlCmd, "\\\n", " ")
	curlCmd = strings.ReplaceAll(curlCmd, "\\", "")

	headers := make(map[string]string)
	var cookie string

	matches := headerRegex.FindAllStringSubmatch(curlCmd, -1)
	for _, match := range matches {
		key, value, ok := splitHeader(firstGroup(match))
		if !ok {
			continue
		}
		if strings.EqualFold(key, "cookie") {
			if cookie == "" {
				cookie = value
			}
			continue
		}
		headers[key] = value
	}

	// -b takes precedence over a Cookie header
	if cookieMatches := cookieRegex.FindStringSubmatch(curlCmd); cookieMatches != nil {
		cookie = firstGroup(cookieMatches)
	}

	var target string
	if urlMatches := urlRegex.FindStringSubmatch(curlCmd); urlMatches != nil {
		target = firstGroup(urlMatches)
	}

	if len(headers) == 0 && cookie == "" {
		return nil, fmt.Errorf("no headers found in curl command")
	}

	return &CurlHeaders{
		Headers: headers,
		Cookie:  cookie,
		URL:     target,
	}, nil
}

// CookieValue returns the value of the named cookie from the parsed Cookie header.
func (c *CurlHeaders) CookieValue(name string) (string, error) {
	for _, pair := range strings.Split(c.Cookie, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if ok && k == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrMissingSession, name)
}

// Origin returns the scheme and host of the command's target URL, or "" when there is none.
func (c *CurlHeaders) Origin() string {
	if c.URL == "" {
		return ""
	}
	u, err := url.Parse(c.URL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func firstGroup(match []string) string {
	for _, g := range match[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

func splitHeader(line string) (string, string, bool) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
