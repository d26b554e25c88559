// internal/bank/bank.go

// Package bank 定義核心商業邏輯：帳戶建立、查詢、移除。
// Bank 為整個程序唯一的帳戶集合，由 main 建立後明確傳入 console，不使用任何全域狀態。
// 程式為單一執行緒、同步阻塞的選單流程，因此不需要互斥鎖。
package bank

import (
	"context"

	"banking/internal/storage"
	"banking/pkg/logger"
)

// Bank 為聚合根 (Aggregate Root)：依建立順序保存所有帳戶。
// 不強制 ID 唯一；查詢為線性掃描，第一筆符合者優先。
type Bank struct {
	accts *storage.List[Account]
}

// NewBank 建立空白銀行實例（僅 in-memory 狀態，無外部依賴）。
func NewBank() *Bank {
	return &Bank{accts: storage.NewList[Account]()}
}

// Add 將帳戶加到集合尾端。
func (b *Bank) Add(a *Account) {
	b.accts.Append(a)
}

// Create 建立帳戶並加入銀行，回傳內部指標供登入後的工作階段直接操作。
func (b *Bank) Create(ctx context.Context, id, holderName, password, securityQuestion, securityAnswer string, initialDeposit float64) *Account {
	a := NewAccount(id, holderName, password, securityQuestion, securityAnswer, initialDeposit)
	b.Add(a)

	log := logger.FromContext(ctx)
	log.Info("account created", "account_id", id, "accounts", b.accts.Len())
	return a
}

// Find 依 ID 自頭線性掃描，回傳第一筆完全相符的帳戶；查無則回傳 ErrAccountNotFound。
func (b *Bank) Find(id string) (*Account, error) {
	a, ok := b.accts.First(func(a *Account) bool { return a.ID == id })
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Remove 以指標身分移除帳戶，不重新以 ID 查詢；
// 因此同 ID 的其他帳戶不受影響。帳戶不在銀行中時回傳 ErrAccountNotFound。
func (b *Bank) Remove(ctx context.Context, a *Account) error {
	if !b.accts.Remove(a) {
		return ErrAccountNotFound
	}
	log := logger.FromContext(ctx)
	log.Info("account deleted", "account_id", a.ID, "accounts", b.accts.Len())
	return nil
}

// Len 回傳目前帳戶數量。
func (b *Bank) Len() int {
	return b.accts.Len()
}

// List 依建立順序回傳所有帳戶。
func (b *Bank) List() []*Account {
	return b.accts.All()
}
