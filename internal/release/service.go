package release

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	releasedb "github.com/nao1215/relinfo/internal/release/db"
)

// VersionQuery はリリース一覧系のクエリ種別。
type VersionQuery int

const (
	// QueryNamedChannels はいずれかの最新フラグを持つリリース（最大3件）を取得する。
	QueryNamedChannels VersionQuery = iota
	// QueryAllVersions は全リリースをリリース日の降順で取得する。
	QueryAllVersions
	// QueryVersionInfo は1つのリリースの詳細を取得する。
	QueryVersionInfo
)

// ComponentQuery はコンポーネント系のクエリ種別。
type ComponentQuery int

const (
	// QueryComponent はリリース内の1つのコンポーネントを取得する。
	QueryComponent ComponentQuery = iota
)

// Service はリリースメタデータの読み取りクエリを実行する。
// 呼び出しごとにコネクションプールから1本の接続を借り、完了時（エラー時も含む）に返却する。
// 呼び出し間で状態は持たない。
type Service struct {
	// db は読み取り専用のコネクションプール。
	db *sql.DB
}

// NewService は新しいServiceを生成する。
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// ExecuteVersions はクエリ種別に応じてリリースの一覧を返す。
// paramはQueryVersionInfoでのみ使用し、空文字の場合は"latest"として扱う。
func (s *Service) ExecuteVersions(ctx context.Context, query VersionQuery, param string) ([]Release, error) {
	var run func(context.Context, releasedb.Querier) ([]Release, error)
	switch query {
	case QueryNamedChannels:
		run = listNamedChannels
	case QueryAllVersions:
		run = listAllVersions
	case QueryVersionInfo:
		run = func(ctx context.Context, q releasedb.Querier) ([]Release, error) {
			return getVersionInfo(ctx, q, param)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownQuery, query)
	}

	var releases []Release
	err := s.withQuerier(ctx, func(q releasedb.Querier) error {
		var err error
		releases, err = run(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return releases, nil
}

// ExecuteComponents はクエリ種別に応じて1つのコンポーネントを返す。
func (s *Service) ExecuteComponents(ctx context.Context, query ComponentQuery, component, version string) (Component, error) {
	if query != QueryComponent {
		return Component{}, fmt.Errorf("%w: %d", ErrUnknownQuery, query)
	}

	var result Component
	err := s.withQuerier(ctx, func(q releasedb.Querier) error {
		var err error
		result, err = getComponent(ctx, q, component, version)
		return err
	})
	if err != nil {
		return Component{}, err
	}
	return result, nil
}

// ListNamedChannels は最新フラグを持つリリースを返す。
func (s *Service) ListNamedChannels(ctx context.Context) ([]Release, error) {
	return s.ExecuteVersions(ctx, QueryNamedChannels, "")
}

// ListAllVersions は全リリースを返す。
func (s *Service) ListAllVersions(ctx context.Context) ([]Release, error) {
	return s.ExecuteVersions(ctx, QueryAllVersions, "")
}

// GetVersionInfo はチャンネル名またはバージョンで指定されたリリースの詳細を返す。
func (s *Service) GetVersionInfo(ctx context.Context, version string) (Release, error) {
	releases, err := s.ExecuteVersions(ctx, QueryVersionInfo, version)
	if err != nil {
		return Release{}, err
	}
	if len(releases) == 0 {
		return Release{}, fmt.Errorf("%w: バージョン %q", ErrNotFound, version)
	}
	return releases[0], nil
}

// GetComponent は指定リリース内のコンポーネントを返す。
func (s *Service) GetComponent(ctx context.Context, component, version string) (Component, error) {
	return s.ExecuteComponents(ctx, QueryComponent, component, version)
}

// withQuerier はプールから接続を1本借りてfnを実行し、必ず返却する。
func (s *Service) withQuerier(ctx context.Context, fn func(releasedb.Querier) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return storeError("接続の取得", err)
	}
	defer conn.Close() //nolint:errcheck

	return fn(releasedb.New(conn))
}

// listNamedChannels はいずれかの最新フラグを持つリリースを最大3件返す。
func listNamedChannels(ctx context.Context, q releasedb.Querier) ([]Release, error) {
	rows, err := q.ListNamedChannels(ctx)
	if err != nil {
		return nil, storeError("名前付きチャンネルの取得", err)
	}
	return releasesFromRows(rows), nil
}

// listAllVersions は全リリースをリリース日の降順で返す。
func listAllVersions(ctx context.Context, q releasedb.Querier) ([]Release, error) {
	rows, err := q.ListReleases(ctx)
	if err != nil {
		return nil, storeError("リリース一覧の取得", err)
	}
	return releasesFromRows(rows), nil
}

// getVersionInfo はリリースを解決し、コミットハッシュ、コンポーネント、成果物を補完して返す。
// 結果は他の一覧系クエリと形を揃えるため1要素のスライスで返す。
func getVersionInfo(ctx context.Context, q releasedb.Querier, param string) ([]Release, error) {
	token := param
	if token == "" {
		token = ChannelLatest
	}

	catalog, err := listAllVersions(ctx, q)
	if err != nil {
		return nil, err
	}
	version, err := ResolveChannel(token, catalog)
	if err != nil {
		return nil, err
	}

	row, err := q.GetRelease(ctx, version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: バージョン %q", ErrNotFound, version)
		}
		return nil, storeError("リリースの取得", err)
	}
	release := releaseFromRow(row)

	release.GitCommit, err = findCommitHash(ctx, q, version)
	if err != nil {
		return nil, err
	}

	rows, err := q.ListComponentTargets(ctx, version)
	if err != nil {
		return nil, storeError("コンポーネントの取得", err)
	}
	release.Components = aggregateComponents(rows)
	release.Profiles = profilesFromComponents(release.Components)

	artefacts, err := listArtefacts(ctx, q, version)
	if err != nil {
		return nil, err
	}
	if len(artefacts) > 0 {
		release.Artefacts = artefacts
	}

	return []Release{release}, nil
}

// findCommitHash はリリースのコンポーネントから最初の有効なコミットハッシュを探す。
// 見つからない場合はエラーではなくnilを返す。
func findCommitHash(ctx context.Context, q releasedb.Querier, version string) (*string, error) {
	commits, err := q.ListComponentCommits(ctx, version)
	if err != nil {
		return nil, storeError("コミットハッシュの取得", err)
	}
	for _, c := range commits {
		if commit := commitFromColumn(c); commit != nil {
			return commit, nil
		}
	}
	return nil, nil
}

// listArtefacts はリリースの成果物を返す。不正な種類が1件でもあればクエリ全体を失敗させる。
func listArtefacts(ctx context.Context, q releasedb.Querier, version string) ([]Artefact, error) {
	rows, err := q.ListArtefacts(ctx, version)
	if err != nil {
		return nil, storeError("成果物の取得", err)
	}
	artefacts := make([]Artefact, 0, len(rows))
	for _, r := range rows {
		a, err := artefactFromRow(r)
		if err != nil {
			return nil, fmt.Errorf("リリース %q の成果物: %w", version, err)
		}
		artefacts = append(artefacts, a)
	}
	return artefacts, nil
}

// getComponent はリリースとコンポーネント名で絞り込んだ結合行を1つのComponentにまとめる。
// 行が1件も無い場合はErrNotFoundを返す。ターゲットを持たないコンポーネントは見つかった扱い。
func getComponent(ctx context.Context, q releasedb.Querier, component, version string) (Component, error) {
	rows, err := q.GetComponentTargets(ctx, releasedb.GetComponentTargetsParams{
		RustVersion: version,
		Name:        component,
	})
	if err != nil {
		return Component{}, storeError("コンポーネントの取得", err)
	}

	agg := NewAggregator()
	for _, row := range rows {
		agg.Add(componentFromRow(releasedb.ListComponentTargetsRow(row)))
	}
	if agg.Len() == 0 {
		return Component{}, fmt.Errorf("%w: コンポーネント %q (バージョン %q)", ErrNotFound, component, version)
	}
	return agg.Components()[0], nil
}

// プロファイル名。
const (
	profileComplete = "complete"
	profileDefault  = "default"
	profileMinimal  = "minimal"
)

// profilesFromComponents はコンポーネントのプロファイルフラグからプロファイル対応表を作る。
// どのコンポーネントもフラグを持たない場合はnilを返す。
func profilesFromComponents(components []Component) map[string][]string {
	profiles := make(map[string][]string)
	for _, c := range components {
		if c.ProfileComplete {
			profiles[profileComplete] = append(profiles[profileComplete], c.Name)
		}
		if c.ProfileDefault {
			profiles[profileDefault] = append(profiles[profileDefault], c.Name)
		}
		if c.ProfileMinimal {
			profiles[profileMinimal] = append(profiles[profileMinimal], c.Name)
		}
	}
	if len(profiles) == 0 {
		return nil
	}
	for _, names := range profiles {
		sort.Strings(names)
	}
	return profiles
}
