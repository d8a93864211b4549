package release

import "fmt"

// Release は1つのツールチェーンバージョンを表す集約。
// クエリごとに新しく組み立てられ、永続化はされない。
type Release struct {
	// Version はバージョン識別子（例: "1.80.0"）。
	Version string `json:"version"`
	// ReleaseDate はリリース日（ISO形式）。
	ReleaseDate string `json:"release_date"`
	// LatestStable は最新の安定版であるかどうか。
	LatestStable bool `json:"latest_stable"`
	// LatestBeta は最新のベータ版であるかどうか。
	LatestBeta bool `json:"latest_beta"`
	// LatestNightly は最新のナイトリー版であるかどうか。
	LatestNightly bool `json:"latest_nightly"`
	// GitCommit はリリースのコミットハッシュ。見つからない場合はnil。
	GitCommit *string `json:"git_commit"`
	// Components はリリースに含まれるコンポーネント。一覧系のクエリでは空。
	Components []Component `json:"components"`
	// Profiles はプロファイル名からコンポーネント名一覧への対応。
	Profiles map[string][]string `json:"profiles"`
	// Renames は旧コンポーネント名から新コンポーネント名への対応。
	Renames map[string]string `json:"renames"`
	// Artefacts はリリース単位の成果物。存在しない場合はnil。
	Artefacts []Artefact `json:"artefacts"`
}

// Component は1つのリリースに属するインストール単位。
// リリース内ではNameが同一性を表す。
type Component struct {
	// Name はコンポーネント名（例: "cargo"）。
	Name string `json:"name"`
	// Version はコンポーネント自身のバージョン文字列。
	Version string `json:"version"`
	// Targets はプラットフォームごとのダウンロード情報。
	Targets []ComponentTarget `json:"target"`
	// GitCommit はコンポーネントのコミットハッシュ。不明な場合はnil。
	GitCommit *string `json:"git_commit"`
	// ProfileComplete はcompleteプロファイルに含まれるかどうか。
	ProfileComplete bool `json:"profile_complete"`
	// ProfileDefault はdefaultプロファイルに含まれるかどうか。
	ProfileDefault bool `json:"profile_default"`
	// ProfileMinimal はminimalプロファイルに含まれるかどうか。
	ProfileMinimal bool `json:"profile_minimal"`
}

// ComponentTarget はコンポーネントのプラットフォーム別ダウンロード情報。
type ComponentTarget struct {
	// Name はターゲットトリプル名。
	Name string `json:"name"`
	// URL はダウンロードURL。
	URL string `json:"url"`
	// Hash はコンテンツハッシュ。
	Hash string `json:"hash"`
}

// Artefact はコンポーネントに紐付かないリリース単位の成果物（インストーラ、ソースアーカイブ）。
type Artefact struct {
	// Kind は成果物の種類。
	Kind ArtefactKind `json:"artefact_type"`
	// URL はダウンロードURL。
	URL string `json:"url"`
	// Hash はコンテンツハッシュ。
	Hash string `json:"hash"`
}

// ArtefactKind は成果物の種類を表す閉じた列挙型。
// ストアには小さな正の整数として格納される。
type ArtefactKind int

const (
	// ArtefactInstallerMSI はWindows向けMSIインストーラ。
	ArtefactInstallerMSI ArtefactKind = 1
	// ArtefactInstallerPkg はmacOS向けPkgインストーラ。
	ArtefactInstallerPkg ArtefactKind = 2
	// ArtefactSourceCode はソースコードのアーカイブ。
	ArtefactSourceCode ArtefactKind = 3
)

// artefactKindNames はJSON表現で使う名前。
var artefactKindNames = map[ArtefactKind]string{
	ArtefactInstallerMSI: "InstallerMSI",
	ArtefactInstallerPkg: "InstallerPkg",
	ArtefactSourceCode:   "SourceCode",
}

// ParseArtefactKind はストアに格納された整数値を成果物の種類に変換する。
// 1, 2, 3 以外の値はErrInvalidDataとなり、既定値への読み替えは行わない。
func ParseArtefactKind(v int64) (ArtefactKind, error) {
	kind := ArtefactKind(v)
	if _, ok := artefactKindNames[kind]; !ok {
		return 0, fmt.Errorf("%w: 成果物の種類 %d", ErrInvalidData, v)
	}
	return kind, nil
}

// String は成果物の種類の名前を返す。
func (k ArtefactKind) String() string {
	if name, ok := artefactKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ArtefactKind(%d)", int(k))
}

// MarshalText は成果物の種類を名前としてエンコードする。
func (k ArtefactKind) MarshalText() ([]byte, error) {
	name, ok := artefactKindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: 成果物の種類 %d", ErrInvalidData, int(k))
	}
	return []byte(name), nil
}

// UnmarshalText は名前から成果物の種類をデコードする。
func (k *ArtefactKind) UnmarshalText(text []byte) error {
	for kind, name := range artefactKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: 成果物の種類 %q", ErrInvalidData, string(text))
}
