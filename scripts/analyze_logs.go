package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors      int
	UpstreamFailures int
	LoginSuccess     int
	LoginFailures    int
	LoginRedirects   int
	CartAdds         int
	StaleFetchDrops  int
	SearchKeywords   map[string]int
	ErrorPatterns    map[string]int
}

func main() {
	// Today's log files under logs/
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		SearchKeywords: make(map[string]int),
		ErrorPatterns:  make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)
	analyzeDebugLogs(filepath.Join(logDir, fmt.Sprintf("debug-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if strings.Contains(line, "Shop API unreachable") ||
			strings.Contains(line, "Shop API returned") ||
			strings.Contains(line, "fetch failed") {
			stats.UpstreamFailures++
		}
		if strings.Contains(line, "Login attempt failed") {
			stats.LoginFailures++
		}
		if strings.Contains(line, "No stored user for protected route") {
			stats.LoginRedirects++
		}

		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	searchRegex := regexp.MustCompile(`Search for "([^"]+)" returned`)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "logged in successfully") {
			stats.LoginSuccess++
		}
		if strings.Contains(line, "added product") && strings.Contains(line, "to cart") {
			stats.CartAdds++
		}
		if m := searchRegex.FindStringSubmatch(line); m != nil {
			stats.SearchKeywords[m[1]]++
		}
	}
}

func analyzeDebugLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), "Stale product fetch discarded") {
			stats.StaleFetchDrops++
		}
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Extract the main error message
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Storefront Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Customer Activity:")
	fmt.Printf("   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Printf("   Failed Logins: %d\n", stats.LoginFailures)
	fmt.Printf("   Login Redirects (no session): %d\n", stats.LoginRedirects)
	fmt.Printf("   Cart Additions: %d\n", stats.CartAdds)

	fmt.Println("\n2. Upstream API Health:")
	fmt.Printf("   Upstream Failures: %d\n", stats.UpstreamFailures)
	fmt.Printf("   Stale Fetches Discarded: %d\n", stats.StaleFetchDrops)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n4. Top Search Keywords:")
	printTopCounts(stats.SearchKeywords, 5)

	fmt.Println("\n5. Most Common Errors:")
	printTopCounts(stats.ErrorPatterns, 5)
}

func printTopCounts(counts map[string]int, limit int) {
	type entry struct {
		key   string
		count int
	}

	var entries []entry
	for key, count := range counts {
		entries = append(entries, entry{key, count})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	for i, e := range entries {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", e.key, e.count)
	}
}
