package disabled

type latch struct {
	ch chan struct{}
}

func (l latch) Wait() { <-l.ch }

func (l latch) Result() (any, error) {
	<-l.ch

	return nil, nil
}

// idle waits on a homonymous type. Nothing here resolves against the
// configured future libraries, so the whole package is out of scope.
func idle() latch {
	l := latch{ch: make(chan struct{})}
	close(l.ch)

	l.Wait()

	v, _ := l.Result()
	_ = v

	return l
}
