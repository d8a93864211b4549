// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// リクエストIDの付与、アクセスログ、パニックリカバリ、CORS設定、
// Prometheusメトリクスの計測を含む。
package middleware
