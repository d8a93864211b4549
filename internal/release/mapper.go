package release

import (
	"database/sql"

	releasedb "github.com/nao1215/relinfo/internal/release/db"
)

// noCommitSentinel はコミットハッシュが無いことを表すためにストアへ文字列として格納される値。
const noCommitSentinel = "None"

// isCommitHash は格納値が有効なコミットハッシュであるかを判定する。
// NULLと番兵値はどちらも「コミット無し」として扱う。
func isCommitHash(v sql.NullString) bool {
	return v.Valid && v.String != noCommitSentinel
}

// commitFromColumn はコミットハッシュ列を任意項目に変換する。
func commitFromColumn(v sql.NullString) *string {
	if !isCommitHash(v) {
		return nil
	}
	commit := v.String
	return &commit
}

// releaseFromRow はreleasesの1行を子要素を持たないReleaseに変換する。
func releaseFromRow(r releasedb.Release) Release {
	return Release{
		Version:       r.Version,
		ReleaseDate:   r.ReleaseDate,
		LatestStable:  r.IsLatestStable,
		LatestBeta:    r.IsLatestBeta,
		LatestNightly: r.IsLatestNightly,
		Components:    []Component{},
	}
}

// releasesFromRows はreleasesの複数行をReleaseのスライスに変換する。
func releasesFromRows(rows []releasedb.Release) []Release {
	releases := make([]Release, 0, len(rows))
	for _, r := range rows {
		releases = append(releases, releaseFromRow(r))
	}
	return releases
}

// componentFromRow はcomponents LEFT JOIN targets の1行をコンポーネントとターゲットに分解する。
// ターゲット列がすべてNULLの行（一致するターゲットが無い行）ではターゲットはnilになる。
func componentFromRow(row releasedb.ListComponentTargetsRow) (Component, *ComponentTarget) {
	component := Component{
		Name:            row.ComponentName,
		Version:         row.Version,
		GitCommit:       commitFromColumn(row.GitCommit),
		ProfileComplete: row.ProfileComplete,
		ProfileDefault:  row.ProfileDefault,
		ProfileMinimal:  row.ProfileMinimal,
	}
	return component, targetFromColumns(row.TargetName, row.Url, row.Hash)
}

// targetFromColumns は結合されたターゲット列からComponentTargetを組み立てる。
func targetFromColumns(name, url, hash sql.NullString) *ComponentTarget {
	if !name.Valid && !url.Valid && !hash.Valid {
		return nil
	}
	return &ComponentTarget{
		Name: name.String,
		URL:  url.String,
		Hash: hash.String,
	}
}

// artefactFromRow はartefactsの1行をArtefactに変換する。
// 種類の値が不正な場合はErrInvalidDataを返す。
func artefactFromRow(r releasedb.Artefact) (Artefact, error) {
	kind, err := ParseArtefactKind(r.Type)
	if err != nil {
		return Artefact{}, err
	}
	return Artefact{
		Kind: kind,
		URL:  r.Url,
		Hash: r.Hash,
	}, nil
}
