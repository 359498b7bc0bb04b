package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another focus timer window is open.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	lockPortMin = 20000
	lockPortMax = 39999
)

// InstanceLock keeps a localhost port bound for the lifetime of the process.
type InstanceLock struct {
	listener net.Listener
}

// LockInstance binds the port derived from appName. A second process with
// the same name gets ErrAlreadyRunning.
func LockInstance(appName string) (*InstanceLock, error) {
	listener, err := net.Listen("tcp", LockAddress(appName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	return &InstanceLock{listener: listener}, nil
}

// LockAddress returns the loopback address used as the lock for appName.
func LockAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	port := lockPortMin + int(hash.Sum32()%uint32(lockPortMax-lockPortMin+1))
	return fmt.Sprintf("127.0.0.1:%d", port)
}

// Release frees the lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	return lock.listener.Close()
}
