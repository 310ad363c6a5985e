package service

import "sync"

// skillLocks 进程内按技能 ID 加锁，不同技能互不阻塞。
// 锁对象按引用计数回收，map 不会随技能数量无限增长。
type skillLocks struct {
	mu    sync.Mutex
	locks map[uint]*skillLock
}

type skillLock struct {
	mu   sync.Mutex
	refs int
}

func newSkillLocks() *skillLocks {
	return &skillLocks{locks: make(map[uint]*skillLock)}
}

// Lock 阻塞直到拿到该技能的锁，返回解锁函数
func (l *skillLocks) Lock(skillID uint) func() {
	l.mu.Lock()
	lock, ok := l.locks[skillID]
	if !ok {
		lock = &skillLock{}
		l.locks[skillID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, skillID)
		}
		l.mu.Unlock()
	}
}

func (l *skillLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
