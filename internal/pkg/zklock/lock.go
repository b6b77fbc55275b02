package zklock

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/pkg/errors"
)

const lockRoot = "/frankies/locks"

// Manager hands out distributed locks backed by ZooKeeper ephemeral
// sequential nodes. One Manager shares a single session for the process.
type Manager struct {
	conn *zk.Conn
}

func NewManager(servers []string, sessionTimeout time.Duration) (*Manager, error) {
	conn, _, err := zk.Connect(servers, sessionTimeout)
	if err != nil {
		return nil, errors.Wrap(err, "connect zookeeper")
	}
	m := &Manager{conn: conn}
	if err := m.ensurePath(lockRoot); err != nil {
		conn.Close()
		return nil, err
	}
	return m, nil
}

func (m *Manager) Close() {
	m.conn.Close()
}

// Lock represents one held lock. Release deletes the node this session
// created; the session dying releases it implicitly.
type Lock struct {
	conn     *zk.Conn
	lockNode string
}

func (l *Lock) Release() error {
	return l.conn.Delete(l.lockNode, -1)
}

// Acquire blocks until the lock for resource is held or ctx is done.
func (m *Manager) Acquire(ctx context.Context, resource string) (*Lock, error) {
	path := lockRoot + "/" + resource
	if err := m.ensurePath(path); err != nil {
		return nil, err
	}

	nodePath, err := m.conn.CreateProtectedEphemeralSequential(path+"/lock-", []byte{}, zk.WorldACL(zk.PermAll))
	if err != nil {
		return nil, errors.Wrap(err, "create lock node")
	}
	lock := &Lock{conn: m.conn, lockNode: nodePath}

	for {
		acquired, watchNode, err := m.tryAcquire(path, nodePath)
		if err != nil {
			lock.Release()
			return nil, err
		}
		if acquired {
			return lock, nil
		}

		// Wait for the immediate predecessor to go away, not the whole
		// children list, to avoid a thundering herd.
		exists, _, ch, err := m.conn.ExistsW(path + "/" + watchNode)
		if err != nil {
			lock.Release()
			return nil, errors.Wrap(err, "watch predecessor")
		}
		if !exists {
			continue
		}
		select {
		case <-ch:
		case <-ctx.Done():
			lock.Release()
			return nil, ctx.Err()
		}
	}
}

// tryAcquire reports whether nodePath holds the lowest sequence number. When
// it does not, the name of the node to watch is returned.
func (m *Manager) tryAcquire(path, nodePath string) (bool, string, error) {
	children, _, err := m.conn.Children(path)
	if err != nil {
		return false, "", errors.Wrap(err, "list lock children")
	}
	sort.Slice(children, func(i, j int) bool {
		return sequenceOf(children[i]) < sequenceOf(children[j])
	})

	mine := nodePath[strings.LastIndex(nodePath, "/")+1:]
	for i, child := range children {
		if child != mine {
			continue
		}
		if i == 0 {
			return true, "", nil
		}
		return false, children[i-1], nil
	}
	return false, "", fmt.Errorf("own lock node %s disappeared", mine)
}

func sequenceOf(name string) int {
	idx := strings.LastIndex(name, "-")
	if idx < 0 {
		return -1
	}
	seq, err := strconv.Atoi(name[idx+1:])
	if err != nil {
		return -1
	}
	return seq
}

func (m *Manager) ensurePath(path string) error {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	current := ""
	for _, part := range parts {
		current += "/" + part
		_, err := m.conn.Create(current, []byte{}, 0, zk.WorldACL(zk.PermAll))
		if err != nil && err != zk.ErrNodeExists {
			return errors.Wrapf(err, "create path %s", current)
		}
	}
	return nil
}
