// internal/console/response.go
//
// 本檔負責統一輸出格式：選單、標題、提示與錯誤訊息。
// 寫入錯誤一律忽略；輸出目的地為終端機，寫入失敗時沒有其他管道可回報。
package console

import (
	"errors"
	"fmt"

	"banking/internal/bank"
)

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// header 印出空行與區段標題，例如 "--- Login ---"。
func (c *Console) header(title string) {
	c.printf("\n--- %s ---\n", title)
}

// showMenu 印出標題、以 1 起算的選項與輸入提示。
func (c *Console) showMenu(m menu) {
	c.header(m.title)
	for i, o := range m.options {
		c.printf("%d. %s\n", i+1, o.label)
	}
	c.printf("Enter your choice: ")
}

// messageFor 將領域錯誤對應到顯示給使用者的訊息。
// 驗證失敗（登入、重設密碼）各有固定訊息，由 login / resetPassword 自行印出。
func messageFor(err error) string {
	switch {
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "Insufficient funds! Withdrawal denied."
	case errors.Is(err, bank.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, bank.ErrInvalidMenuChoice):
		return "Invalid choice! Please try again."
	case errors.Is(err, bank.ErrInvalidAmount):
		return "Invalid amount! Please enter a number."
	default:
		return "An unexpected error occurred."
	}
}
