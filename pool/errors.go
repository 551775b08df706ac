package pool

import (
	"fmt"
)

// WorkerFailure 表示某個 worker 沒有完成它所有的 increment
type WorkerFailure struct {
	Worker    int
	Completed int
	Expected  int
	// Panic 是 recover 到的值，worker 回傳 error 時為 nil
	Panic any
	Err   error
}

func (f *WorkerFailure) Error() string {
	if f.Panic != nil {
		return fmt.Sprintf("worker %d panicked after %d/%d increments: %v", f.Worker, f.Completed, f.Expected, f.Panic)
	}
	return fmt.Sprintf("worker %d failed after %d/%d increments: %v", f.Worker, f.Completed, f.Expected, f.Err)
}

func (f *WorkerFailure) Unwrap() error {
	return f.Err
}
