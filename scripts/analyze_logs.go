package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors       int
	LoginSuccess      int
	LoginFailures     int
	DraftsStarted     int
	OrdersSubmitted   int
	OrdersRejected    int
	SubmissionsFailed int
	RemoteFailures    int
	Panics            int
	ProductOrders     map[string]int
	ErrorPatterns     map[string]int
}

var (
	// "ERROR: 2026/01/02 15:04:05 workflow.go:489: message"
	logLineRegex     = regexp.MustCompile(`^[A-Z]+: \d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} [^:]+:\d+: (.*)$`)
	productRegex     = regexp.MustCompile(`for product (\S+)`)
	remotePathRegex  = regexp.MustCompile(`^Remote call (\S+ \S+) (failed|rejected)`)
	numberRunRegex   = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f-]{27}|\d+`)
	quotedValueRegex = regexp.MustCompile(`"[^"]*"`)
)

func newLogStats() *LogStats {
	return &LogStats{
		ProductOrders: make(map[string]int),
		ErrorPatterns: make(map[string]int),
	}
}

func main() {
	logDir := flag.String("dir", "./logs", "directory holding the dated log files")
	date := flag.String("date", time.Now().Format("2006-01-02"), "day to analyze (YYYY-MM-DD)")
	flag.Parse()

	stats := newLogStats()

	// Analyze error logs
	analyzeFile(filepath.Join(*logDir, fmt.Sprintf("error-%s.log", *date)), stats, analyzeErrorLogs)

	// Analyze info logs
	analyzeFile(filepath.Join(*logDir, fmt.Sprintf("info-%s.log", *date)), stats, analyzeInfoLogs)

	printReport(os.Stdout, stats)
}

func analyzeFile(logFile string, stats *LogStats, analyze func(io.Reader, *LogStats) error) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	if err := analyze(file, stats); err != nil {
		fmt.Printf("Error reading log file %s: %v\n", logFile, err)
	}
}

// message strips the logger prefix; continuation lines (stack traces) return ""
func message(line string) string {
	m := logLineRegex.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

func analyzeErrorLogs(r io.Reader, stats *LogStats) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		msg := message(scanner.Text())
		if msg == "" {
			continue
		}
		stats.TotalErrors++

		switch {
		case strings.HasPrefix(msg, "Login rejected"):
			stats.LoginFailures++
		case strings.HasPrefix(msg, "Order submission for product"):
			stats.SubmissionsFailed++
		case strings.HasPrefix(msg, "Panic:"):
			stats.Panics++
		}
		if m := remotePathRegex.FindStringSubmatch(msg); m != nil {
			stats.RemoteFailures++
			stats.ErrorPatterns["Remote call "+numberRunRegex.ReplaceAllString(m[1], "N")+" "+m[2]]++
			continue
		}

		extractErrorPattern(msg, stats)
	}
	return scanner.Err()
}

func analyzeInfoLogs(r io.Reader, stats *LogStats) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		msg := message(scanner.Text())

		switch {
		case strings.HasPrefix(msg, "User ") && strings.Contains(msg, " logged in"):
			stats.LoginSuccess++
		case strings.HasPrefix(msg, "Started order draft"):
			stats.DraftsStarted++
		case strings.HasPrefix(msg, "Order draft rejected"):
			stats.OrdersRejected++
		case strings.HasPrefix(msg, "Order ") && strings.Contains(msg, " submitted for product "):
			stats.OrdersSubmitted++
			extractProduct(msg, stats)
		}
	}
	return scanner.Err()
}

func extractProduct(msg string, stats *LogStats) {
	if m := productRegex.FindStringSubmatch(msg); m != nil {
		stats.ProductOrders[m[1]]++
	}
}

// extractErrorPattern groups messages that differ only in ids and quoted values
func extractErrorPattern(msg string, stats *LogStats) {
	pattern := msg
	if i := strings.Index(pattern, ": "); i > 0 {
		pattern = pattern[:i]
	}
	pattern = quotedValueRegex.ReplaceAllString(pattern, `"…"`)
	pattern = numberRunRegex.ReplaceAllString(pattern, "N")
	stats.ErrorPatterns[pattern]++
}

func printReport(w io.Writer, stats *LogStats) {
	fmt.Fprintln(w, "\n=== Log Analysis Report ===")
	fmt.Fprintln(w, "Generated:", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, "\n1. Authentication Statistics:")
	fmt.Fprintf(w, "   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Fprintf(w, "   Failed Logins: %d\n", stats.LoginFailures)

	fmt.Fprintln(w, "\n2. Orders:")
	fmt.Fprintf(w, "   Drafts Started: %d\n", stats.DraftsStarted)
	fmt.Fprintf(w, "   Orders Placed: %d\n", stats.OrdersSubmitted)
	fmt.Fprintf(w, "   Rejected By Validation: %d\n", stats.OrdersRejected)
	fmt.Fprintf(w, "   Failed Submissions: %d\n", stats.SubmissionsFailed)

	fmt.Fprintln(w, "\n3. Error Statistics:")
	fmt.Fprintf(w, "   Total Errors: %d\n", stats.TotalErrors)
	fmt.Fprintf(w, "   Remote Service Failures: %d\n", stats.RemoteFailures)
	fmt.Fprintf(w, "   Recovered Panics: %d\n", stats.Panics)

	fmt.Fprintln(w, "\n4. Most Ordered Products:")
	printTop(w, stats.ProductOrders, 5, "orders")

	fmt.Fprintln(w, "\n5. Most Common Errors:")
	printTop(w, stats.ErrorPatterns, 5, "occurrences")
}

type entryCount struct {
	key   string
	count int
}

func topEntries(counts map[string]int, limit int) []entryCount {
	var entries []entryCount
	for key, count := range counts {
		entries = append(entries, entryCount{key, count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func printTop(w io.Writer, counts map[string]int, limit int, unit string) {
	for _, e := range topEntries(counts, limit) {
		fmt.Fprintf(w, "   %s: %d %s\n", e.key, e.count, unit)
	}
}
