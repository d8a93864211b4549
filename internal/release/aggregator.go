package release

import releasedb "github.com/nao1215/relinfo/internal/release/db"

// Aggregator は同じコンポーネント名を持つ結合行を1つのComponentにまとめる。
//
// 初めて現れた名前は新しいComponentとして登録し、2回目以降はターゲットのみを追記する。
// バージョンやコミットハッシュ等のスカラー項目は最初の行の値を保持し、上書きしない。
// ターゲットには同一性のキーが無いため重複は除去しない。
type Aggregator struct {
	index      map[string]int
	components []Component
}

// NewAggregator は空のAggregatorを生成する。
func NewAggregator() *Aggregator {
	return &Aggregator{index: make(map[string]int)}
}

// Add は1行分のコンポーネントとターゲット（nil可）を取り込む。
func (a *Aggregator) Add(component Component, target *ComponentTarget) {
	if i, ok := a.index[component.Name]; ok {
		if target != nil {
			a.components[i].Targets = append(a.components[i].Targets, *target)
		}
		return
	}

	component.Targets = nil
	if target != nil {
		component.Targets = []ComponentTarget{*target}
	}
	a.index[component.Name] = len(a.components)
	a.components = append(a.components, component)
}

// Components は集約済みのコンポーネントを返す。
// 順序は最初に現れた順だが、呼び出し側はこの順序に依存してはならない。
func (a *Aggregator) Components() []Component {
	components := make([]Component, len(a.components))
	copy(components, a.components)
	return components
}

// Len は集約済みのコンポーネント数を返す。
func (a *Aggregator) Len() int {
	return len(a.components)
}

// aggregateComponents は結合行の列をコンポーネントの集合に集約する。
func aggregateComponents(rows []releasedb.ListComponentTargetsRow) []Component {
	agg := NewAggregator()
	for _, row := range rows {
		agg.Add(componentFromRow(row))
	}
	return agg.Components()
}
