// internal/console/actions.go
//
// 各選單項目的處理函式。每個函式讀取所需輸入後呼叫 bank 層，並印出結果。
// 除讀取錯誤外，所有失敗（查無帳戶、驗證失敗、餘額不足）都只印出訊息，不中斷工作階段。
package console

import (
	"context"

	"banking/internal/bank"
	"banking/pkg/logger"
)

// createAccount 依序詢問帳戶資料並建立帳戶；不檢查 ID 是否重複。
func (c *Console) createAccount(ctx context.Context) (bool, error) {
	c.header("Create Account")
	id, err := c.prompt("Enter Account ID: ")
	if err != nil {
		return false, err
	}
	holder, err := c.prompt("Enter Account Holder Name: ")
	if err != nil {
		return false, err
	}
	password, err := c.prompt("Set Password: ")
	if err != nil {
		return false, err
	}
	question, err := c.prompt("Set Security Question (e.g., Your favorite color): ")
	if err != nil {
		return false, err
	}
	answer, err := c.prompt("Set Security Answer: ")
	if err != nil {
		return false, err
	}
	deposit, err := c.readAmount(ctx, "Enter Initial Deposit: ")
	if err != nil {
		return false, err
	}

	c.Bank.Create(ctx, id, holder, password, question, answer, deposit)
	c.println("Account created successfully!")
	return false, nil
}

// login 驗證帳號密碼，成功後進入帳戶管理選單；
// 查無帳戶與密碼錯誤顯示相同訊息。
func (c *Console) login(ctx context.Context) (bool, error) {
	c.header("Login")
	id, err := c.prompt("Enter Account ID: ")
	if err != nil {
		return false, err
	}
	password, err := c.prompt("Enter Password: ")
	if err != nil {
		return false, err
	}

	log, ctx := logger.With(ctx, "account_id", id)
	a, err := c.Bank.Find(id)
	if err == nil && !a.Authenticate(password) {
		err = bank.ErrAuthenticationFailed
	}
	if err != nil {
		log.Warn("login failed", "error", err)
		c.println("Invalid Account ID or Password. Login failed.")
		return false, nil
	}

	log.Info("login succeeded")
	c.printf("Login successful. Welcome %s!\n", a.HolderName)
	return false, c.runMenu(ctx, c.accountMenu(a))
}

// resetPassword 以安全問題驗證身分後覆寫密碼。
func (c *Console) resetPassword(ctx context.Context) (bool, error) {
	c.header("Reset Password")
	id, err := c.prompt("Enter Account ID: ")
	if err != nil {
		return false, err
	}

	log, _ := logger.With(ctx, "account_id", id)
	a, err := c.Bank.Find(id)
	if err != nil {
		log.Warn("password reset failed", "error", err)
		c.println(messageFor(err))
		return false, nil
	}

	c.printf("Security Question: %s\n", a.SecurityQuestion)
	answer, err := c.prompt("Enter your answer: ")
	if err != nil {
		return false, err
	}
	if !a.VerifySecurityAnswer(answer) {
		log.Warn("password reset failed", "error", bank.ErrAuthenticationFailed)
		c.println("Security answer incorrect! Password reset failed.")
		return false, nil
	}

	newPassword, err := c.prompt("Enter new password: ")
	if err != nil {
		return false, err
	}
	a.ResetPassword(newPassword)
	log.Info("password reset")
	c.println("Password reset successfully!")
	return false, nil
}

// exit 需使用者輸入 yes（不分大小寫）才結束程式，其餘回答皆回到主選單。
func (c *Console) exit(ctx context.Context) (bool, error) {
	ok, err := c.confirm("Are you sure you want to exit? (yes/no): ")
	if err != nil || !ok {
		return false, err
	}
	c.println("Thank you for using the Bank Management System. Goodbye!")
	return true, nil
}

func (c *Console) viewBalance(a *bank.Account) (bool, error) {
	c.printf("Current Balance: %s\n", bank.FormatAmount(a.Balance()))
	return false, nil
}

func (c *Console) deposit(ctx context.Context, a *bank.Account) (bool, error) {
	amount, err := c.readAmount(ctx, "Enter Deposit Amount: ")
	if err != nil {
		return false, err
	}
	balance := a.Deposit(amount)
	c.printf("Deposit successful. Current balance: %s\n", bank.FormatAmount(balance))
	return false, nil
}

// withdraw 餘額不足時只印出訊息，餘額與紀錄不變，留在帳戶選單。
func (c *Console) withdraw(ctx context.Context, a *bank.Account) (bool, error) {
	amount, err := c.readAmount(ctx, "Enter Withdrawal Amount: ")
	if err != nil {
		return false, err
	}
	balance, err := a.Withdraw(amount)
	if err != nil {
		logger.FromContext(ctx).Warn("withdrawal denied", "error", err)
		c.println(messageFor(err))
		return false, nil
	}
	c.printf("Withdrawal successful. Current balance: %s\n", bank.FormatAmount(balance))
	return false, nil
}

func (c *Console) viewHistory(a *bank.Account) (bool, error) {
	c.header("Transaction History")
	history := a.History()
	if len(history) == 0 {
		c.println("No transactions yet.")
		return false, nil
	}
	for _, entry := range history {
		c.println(entry)
	}
	return false, nil
}

// deleteAccount 確認後以身分移除帳戶並強制登出；拒絕則留在帳戶選單。
func (c *Console) deleteAccount(ctx context.Context, a *bank.Account) (bool, error) {
	ok, err := c.confirm("Are you sure you want to delete your account? (yes/no): ")
	if err != nil || !ok {
		return false, err
	}
	if err := c.Bank.Remove(ctx, a); err != nil {
		logger.FromContext(ctx).Error("delete account failed", "error", err)
		c.println(messageFor(err))
		return true, nil
	}
	c.println("Account deleted successfully. Goodbye!")
	return true, nil
}

func (c *Console) logout() (bool, error) {
	c.println("Logging out...")
	return true, nil
}
