// internal/console/menu.go
//
// 本檔負責選單註冊：選項編號、標題與對應動作的綁定。
// 與 actions.go 分離：
//   - actions.go 定義「如何處理每個選項」
//   - menu.go 定義「選項如何被導向」
package console

import (
	"context"

	"banking/internal/bank"
)

// option 為選單中的一個項目；run 回傳 done=true 表示離開所在的選單迴圈。
type option struct {
	label string
	run   func(ctx context.Context) (done bool, err error)
}

type menu struct {
	title   string
	options []option
}

// mainMenu 建立主選單（1..4）。
func (c *Console) mainMenu() menu {
	return menu{
		title: "Bank Management System",
		options: []option{
			{"Create Account", c.createAccount},
			{"Login", c.login},
			{"Reset Password", c.resetPassword},
			{"Exit", c.exit},
		},
	}
}

// accountMenu 建立登入後的帳戶管理選單（1..6），所有動作皆綁定於同一個帳戶。
func (c *Console) accountMenu(a *bank.Account) menu {
	return menu{
		title: "Account Management",
		options: []option{
			{"View Balance", func(ctx context.Context) (bool, error) { return c.viewBalance(a) }},
			{"Deposit", func(ctx context.Context) (bool, error) { return c.deposit(ctx, a) }},
			{"Withdraw", func(ctx context.Context) (bool, error) { return c.withdraw(ctx, a) }},
			{"View Transaction History", func(ctx context.Context) (bool, error) { return c.viewHistory(a) }},
			{"Delete Account", func(ctx context.Context) (bool, error) { return c.deleteAccount(ctx, a) }},
			{"Logout", func(ctx context.Context) (bool, error) { return c.logout() }},
		},
	}
}
