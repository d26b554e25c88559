// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account 帳戶紀錄與其操作，不含任何輸入輸出或儲存細節。

package bank

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Account represents a bank account.
// 密碼、安全答案、餘額與交易紀錄皆不公開，只能透過方法變更，
// 以維持「餘額僅在提款時檢查不得為負」與「紀錄只增不減」兩項規則。
type Account struct {
	ID               string
	HolderName       string
	SecurityQuestion string

	password       string
	securityAnswer string
	balance        float64
	history        []string
}

// NewAccount 以初始存款建立帳戶，並寫入第一筆交易紀錄。
// 不驗證任何欄位：空字串、零或負數的初始存款皆接受。
func NewAccount(id, holderName, password, securityQuestion, securityAnswer string, initialDeposit float64) *Account {
	return &Account{
		ID:               id,
		HolderName:       holderName,
		SecurityQuestion: securityQuestion,
		password:         password,
		securityAnswer:   securityAnswer,
		balance:          initialDeposit,
		history:          []string{"Account created with initial deposit: " + FormatAmount(initialDeposit)},
	}
}

// Authenticate 以大小寫敏感的字串相等比對密碼。
func (a *Account) Authenticate(password string) bool {
	return a.password == password
}

// VerifySecurityAnswer 以忽略大小寫的方式比對安全問題答案。
func (a *Account) VerifySecurityAnswer(answer string) bool {
	return strings.EqualFold(a.securityAnswer, answer)
}

// ResetPassword 直接覆寫密碼，不留下交易紀錄。
func (a *Account) ResetPassword(newPassword string) {
	a.password = newPassword
}

// Balance 回傳目前餘額。
func (a *Account) Balance() float64 {
	return a.balance
}

// Deposit 存款：不檢查金額正負，直接加總並追加紀錄，回傳新餘額。
func (a *Account) Deposit(amount float64) float64 {
	a.balance += amount
	a.history = append(a.history, "Deposited: "+FormatAmount(amount))
	return a.balance
}

// Withdraw 提款：金額大於餘額時回傳 ErrInsufficientFunds，餘額與紀錄皆不變。
// 不檢查金額是否為負。
func (a *Account) Withdraw(amount float64) (float64, error) {
	if amount > a.balance {
		return a.balance, fmt.Errorf("withdraw %s from %q: %w", FormatAmount(amount), a.ID, ErrInsufficientFunds)
	}
	a.balance -= amount
	a.history = append(a.history, "Withdrew: "+FormatAmount(amount))
	return a.balance, nil
}

// History 回傳交易紀錄的值拷貝，避免外部修改內部切片。
func (a *Account) History() []string {
	out := make([]string, len(a.history))
	copy(out, a.history)
	return out
}

// FormatAmount 將金額轉為顯示字串：
//   - 絕對值在 [1e-3, 1e7) 或為零：十進位，整數值保留一位小數（100.0、150.25）
//   - 其餘：科學記號，尾數至少一位小數（1.0E7、1.5E-4）
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	n, _ := strconv.Atoi(exp)
	return withFraction(mant) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
