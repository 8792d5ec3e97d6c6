package console

// FailurePolicy 載入失敗時對既有資料的處理方式
type FailurePolicy int

const (
	// KeepOnFailure 載入失敗時保留上一次成功的資料
	KeepOnFailure FailurePolicy = iota
	// EmptyOnFailure 載入失敗時清空列表
	EmptyOnFailure
)

// Loader 集合資料載入器，統一處理載入中狀態與失敗策略
type Loader[T any] struct {
	fetch    func() ([]T, error)
	policy   FailurePolicy
	items    []T
	loading  bool
	lastErr  error
	loadedAt bool
}

// NewLoader 建立載入器，fetch 為實際取資料的函式
func NewLoader[T any](fetch func() ([]T, error), policy FailurePolicy) *Loader[T] {
	return &Loader[T]{fetch: fetch, policy: policy}
}

// Reload 重新載入資料，回傳此次是否成功
func (l *Loader[T]) Reload() bool {
	l.loading = true
	items, err := l.fetch()
	l.loading = false
	l.lastErr = err

	if err != nil {
		if l.policy == EmptyOnFailure {
			l.items = nil
		}
		return false
	}

	l.items = items
	l.loadedAt = true
	return true
}

// Items 取得目前持有的資料
func (l *Loader[T]) Items() []T {
	return l.items
}

// Loading 是否正在載入
func (l *Loader[T]) Loading() bool {
	return l.loading
}

// LastError 最近一次載入的錯誤，成功時為 nil
func (l *Loader[T]) LastError() error {
	return l.lastErr
}

// Loaded 是否曾成功載入過
func (l *Loader[T]) Loaded() bool {
	return l.loadedAt
}
