// internal/console/input.go
//
// 讀取輸入的輔助函式。每次讀取一整行並阻塞直到取得輸入；
// 輸入結束時回傳 io.EOF，由 Run 視為離開。
package console

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"banking/internal/bank"
	"banking/pkg/logger"
)

// readLine 讀取一行（不含換行字元）。
func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

// prompt 印出提示（不換行）後讀取一行文字，內容原樣回傳。
func (c *Console) prompt(label string) (string, error) {
	c.printf("%s", label)
	return c.readLine()
}

// readChoice 讀取 1..count 的整數選項；非整數或超出範圍回傳 ErrInvalidMenuChoice。
func (c *Console) readChoice(count int) (int, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("choice %q: %w", line, bank.ErrInvalidMenuChoice)
	}
	return n, nil
}

// readAmount 讀取金額；無法解析時印出提示並重新詢問，直到取得有效數值或輸入結束。
func (c *Console) readAmount(ctx context.Context, label string) (float64, error) {
	for {
		line, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		amount, err := parseAmount(line)
		if err != nil {
			logger.FromContext(ctx).Debug("invalid amount", "error", err)
			c.println(messageFor(err))
			continue
		}
		return amount, nil
	}
}

// parseAmount 以 decimal 檢查金額文字，拒絕 NaN、Inf 與非數字內容，
// 再以 strconv 直接轉為 float64；超出 float64 範圍者同樣拒絕。正負號與零皆接受。
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if _, err := decimal.NewFromString(s); err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, bank.ErrInvalidAmount)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, fmt.Errorf("amount %q out of range: %w", s, bank.ErrInvalidAmount)
	}
	return f, nil
}

// confirm 讀取 yes/no 回答；只有 "yes"（不分大小寫）視為同意。
func (c *Console) confirm(label string) (bool, error) {
	line, err := c.prompt(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "yes"), nil
}
