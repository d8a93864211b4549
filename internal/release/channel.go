package release

import "fmt"

// チャンネル名。これ以外のトークンはバージョン識別子そのものとして扱う。
const (
	ChannelLatest  = "latest"
	ChannelStable  = "stable"
	ChannelBeta    = "beta"
	ChannelNightly = "nightly"
)

// ResolveChannel はチャンネル名またはバージョン識別子を具体的なバージョンに解決する。
// catalogはリリース日の降順に並んだ全リリースを渡す。
//
// 同じフラグを持つリリースが複数ある場合はcatalog上で最初に見つかったものを返す。
// 該当するリリースが無い場合はErrNotFoundを返す。
func ResolveChannel(token string, catalog []Release) (string, error) {
	var match func(Release) bool
	switch token {
	case ChannelLatest, ChannelStable:
		match = func(r Release) bool { return r.LatestStable }
	case ChannelBeta:
		match = func(r Release) bool { return r.LatestBeta }
	case ChannelNightly:
		match = func(r Release) bool { return r.LatestNightly }
	default:
		match = func(r Release) bool { return r.Version == token }
	}

	for _, r := range catalog {
		if match(r) {
			return r.Version, nil
		}
	}
	return "", fmt.Errorf("%w: チャンネルまたはバージョン %q", ErrNotFound, token)
}
