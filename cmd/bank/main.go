// cmd/bank/main.go

// 本程式提供帳戶建立、登入、存提款、交易紀錄與重設密碼的文字選單。
// 此檔案負責初始化模組（config, logger, bank, console），
// 並以標準輸入輸出執行選單；所有資料僅存於記憶體，程式結束即消失。

package main

import (
	"context"
	"os"

	"banking/internal/bank"
	"banking/internal/config"
	"banking/internal/console"
	"banking/pkg/logger"
)

func main() {
	cfg := config.New()

	// 診斷日誌寫入 stderr，stdout 只保留選單內容
	log := logger.New(cfg.LogLevel, logger.NewConsoleHandler)
	ctx := logger.ToContext(context.Background(), log)

	// 初始化銀行核心模組（本次執行唯一的帳戶集合）
	b := bank.NewBank()

	c := console.New(b, os.Stdin, os.Stdout)
	if err := c.Run(ctx); err != nil {
		log.Error("console stopped", "error", err)
		os.Exit(1)
	}
}
