package game

import "context"

// Listen subscribes s to a stream of key identifiers. Events are applied one
// at a time while the game is in progress; onChange (optional) sees every
// state that differs from its predecessor.
//
// The subscription ends when the game is over, ctx is done, or keys is
// closed, and the final state is returned. Nothing is read from keys after
// Listen returns.
func Listen(ctx context.Context, s State, keys <-chan string, onChange func(State)) State {
	for s.Status() == StatusInProgress {
		select {
		case <-ctx.Done():
			return s
		case key, ok := <-keys:
			if !ok {
				return s
			}
			next := s.HandleKey(key)
			if next == s {
				continue
			}
			s = next
			if onChange != nil {
				onChange(s)
			}
		}
	}
	return s
}
