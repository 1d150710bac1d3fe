// Package models defines the output row written for the finance tool
// and the fixed labels that fill it.
package models

// ZaimRow is one data line of the import CSV. Field order and csv tags
// define the 13-column header the finance tool expects.
type ZaimRow struct {
	Date          string `csv:"取引日時"`
	Withdrawal    string `csv:"出金金額(円)"`
	Deposit       string `csv:"入金金額(円)"`
	ForeignOut    string `csv:"海外出金金額"`
	ForeignIn     string `csv:"海外入金金額"`
	Currency      string `csv:"通貨"`
	Balance       string `csv:"残高(円)"`
	Content       string `csv:"取引内容"`
	Payee         string `csv:"取引先"`
	Method        string `csv:"お支払方法"`
	Memo          string `csv:"メモ"`
	User          string `csv:"利用者"`
	TransactionNo string `csv:"取引番号"`
}
