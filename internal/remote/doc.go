// Package remote implements an interactive terminal remote control for a
// MusicCast receiver.
//
// The remote is a Bubble Tea program. Each key press sends one command to
// the receiver in the background while a spinner runs; when the command
// returns, the zone status and now-playing information are refreshed.
// Only one command is in flight at a time, further key presses are
// ignored until it completes.
//
// # Key Bindings
//
//	space/enter  play            s      stop
//	→/n          next track      ←/b    previous track
//	↑/+          volume up       ↓/-    volume down
//	m            toggle mute     p      toggle power
//	r            refresh         ?      full help
//	q/esc        quit
//
// # Usage
//
//	dev, err := yxc.NewDevice(ctx, "192.168.1.50")
//	if err != nil {
//	    return err
//	}
//	return remote.Run(ctx, dev, dev.String())
package remote
