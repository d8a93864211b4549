// Package httpclient はrelinfoサーバーのJSON APIを呼び出すクライアントを提供する。
//
// CLIのリモートモード（--server指定時）が、ローカルのSQLiteファイルの代わりに
// 起動中のサーバーへ問い合わせる際に使用する。
package httpclient
