// internal/console/console.go
//
// Package console
// ─────────────────────────────────────────────
// 提供文字選單介面，作為 bank 模組的應用層 (Application Layer)。
// 每個動作僅負責：
//  1. 讀取使用者輸入（阻塞直到取得一行）
//  2. 呼叫 bank 層執行商業邏輯
//  3. 將結果或錯誤訊息印出
//
// 分層：
//   - bank：純商業邏輯，與輸入輸出無關。
//   - console：處理終端機互動（本套件）。
//   - storage：帳戶集合的記憶體儲存。
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math"

	"github.com/google/uuid"

	"banking/internal/bank"
	"banking/pkg/logger"
)

// Console 為選單控制器：
// - Bank：注入的帳戶集合（整個程序唯一的一份）。
// - in / out：輸入來源與輸出目的地，測試時以記憶體緩衝替換。
type Console struct {
	Bank *bank.Bank
	in   *bufio.Scanner
	out  io.Writer
}

// New 建立選單控制器。單行長度不設上限，與一般終端機輸入一致。
func New(b *bank.Bank, in io.Reader, out io.Writer) *Console {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return &Console{Bank: b, in: sc, out: out}
}

// Run 執行主選單迴圈，直到使用者確認離開或輸入結束。
// 兩種情況皆回傳 nil；僅在讀取輸入失敗時回傳錯誤。
func (c *Console) Run(ctx context.Context) error {
	log, ctx := logger.With(ctx, "session_id", uuid.NewString())
	log.Debug("session started")

	err := c.runMenu(ctx, c.mainMenu())
	if errors.Is(err, io.EOF) {
		log.Debug("input closed")
		return nil
	}
	return err
}

// runMenu 顯示選單、讀取選項並分派動作。
// 非法選項只印出提示並重新顯示同一選單；動作回傳 done=true 時離開本層迴圈。
func (c *Console) runMenu(ctx context.Context, m menu) error {
	log := logger.FromContext(ctx)
	for {
		c.showMenu(m)
		n, err := c.readChoice(len(m.options))
		if errors.Is(err, bank.ErrInvalidMenuChoice) {
			log.Debug("invalid menu choice", "menu", m.title)
			c.println(messageFor(err))
			continue
		}
		if err != nil {
			return err
		}

		done, err := m.options[n-1].run(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
