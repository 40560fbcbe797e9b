// Package yxc provides an HTTP client for Yamaha MusicCast receivers.
//
// It wraps the receiver's extended-control API, a set of GET endpoints
// under /YamahaExtendedControl/v1 grouped as system, main (the default
// zone), tuner and netusb. Every operation is one request; there is no
// session and nothing to close.
//
// # Usage Example
//
//	// Opening a device validates the address and reads device info
//	dev, err := yxc.NewDevice(ctx, "192.168.1.50")
//	if err != nil {
//	    log.Fatal(yxc.GetShortErrorMessage(err))
//	}
//	fmt.Println(dev.Model)
//
//	// Commands return the decoded JSON body
//	resp, err := dev.IncreaseVolume(ctx)
//	if err != nil {
//	    log.Fatal(err) // transport failure
//	}
//	if resp.IsEmpty() {
//	    log.Print("receiver rejected the request")
//	}
//
// # Failure Channels
//
// Failures come back through two different channels:
//   - Transport failures (refused, DNS, timeout) are returned as *DeviceError.
//   - A non-200 HTTP status is not an error. The call returns an empty
//     Response instead, so callers must check IsEmpty.
//
// NewDevice is the exception: a non-200 answer to the device-info query
// fails construction with a connection error.
//
// # Timeouts and Retries
//
// Requests are unbounded and never retried unless WithTimeout or
// WithRetry is passed to NewDevice.
package yxc
