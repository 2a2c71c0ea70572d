package asyncdispatch

import (
	"errors"
	"os"
	"sync"
	"testing"

	"gitlab.com/NebulousLabs/log"
)

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()
	logger, err := log.NewLogger(os.Stderr)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { logger.Close() })
	return logger
}

func TestDispatcherRunsJobsAndDeliversResults(t *testing.T) {
	d := New(2, newTestLogger(t))
	defer d.Close()

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	results := make([]error, n)
	for i := 0; i < n; i++ {
		i := i
		d.Submit(Job{
			Encode: func() error {
				if i%5 == 0 {
					return errors.New("simulated encode failure")
				}
				return nil
			},
			Callback: func(err error) {
				results[i] = err
				wg.Done()
			},
		})
	}
	wg.Wait()

	for i, err := range results {
		wantErr := i%5 == 0
		if (err != nil) != wantErr {
			t.Errorf("job %d: err=%v, want error=%v", i, err, wantErr)
		}
	}
}

func TestDispatcherCloseWaitsForInFlightJobs(t *testing.T) {
	d := New(1, newTestLogger(t))

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	d.Submit(Job{
		Encode: func() error {
			close(started)
			<-release
			return nil
		},
		Callback: func(error) { close(done) },
	})

	<-started // the worker has dequeued the job and is running it
	closed := make(chan struct{})
	go func() {
		d.Close()
		close(closed)
	}()
	close(release) // let Encode return

	<-closed
	select {
	case <-done:
	default:
		t.Fatal("Close returned before the in-flight job's callback ran")
	}
}
