package helper

import (
	"fmt"
	"strconv"
	"strings"
)

const notAvailable = "N/A"

// FormatDistance はメートルを表示用の文字列に変換する
func FormatDistance(meters float64) string {
	if meters < 0 {
		return notAvailable
	}
	if meters == 0 {
		return "0 m"
	}
	if meters < 1000 {
		return strconv.FormatFloat(meters, 'f', -1, 64) + " m"
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration は分（文字列）を "2 h 30 min" 形式に変換する
func FormatDuration(minutes string) string {
	if minutes == "" {
		return notAvailable
	}
	total, ok := parseLeadingInt(minutes)
	if !ok || total < 0 {
		return notAvailable
	}
	if total == 0 {
		return "0 min"
	}

	hours := total / 60
	mins := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d h", hours))
	}
	if mins > 0 {
		parts = append(parts, fmt.Sprintf("%d min", mins))
	}
	return strings.Join(parts, " ")
}

// parseLeadingInt は先頭の整数部分だけを読み取る（"90 min" → 90, "2.5" → 2）
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
