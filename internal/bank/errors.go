// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 這些錯誤屬於商業邏輯層級，由上層 console 轉換成對使用者顯示的訊息。
// 呼叫端一律以 errors.Is 比對，不依賴錯誤字串。

package bank

import "errors"

var (
	// ErrInsufficientFunds 代表提款金額大於目前餘額；提款不生效，工作階段繼續。
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound 代表依 ID 查無帳戶，或欲移除的帳戶已不在銀行中。
	ErrAccountNotFound = errors.New("account not found")

	// ErrAuthenticationFailed 代表密碼錯誤（登入）或安全問題答案錯誤（重設密碼）。
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidMenuChoice 代表選單輸入不在可選範圍內，或不是整數。
	ErrInvalidMenuChoice = errors.New("invalid menu choice")

	// ErrInvalidAmount 代表金額輸入無法解析為有限數值。
	ErrInvalidAmount = errors.New("invalid amount")
)
