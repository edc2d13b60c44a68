package account

import "sync"

var _ hasher = &hasherMock{}

type hasherMock struct {
	HashFunc        func(password string) (string, error)
	VerifyFunc      func(hash string, password string) bool
	VerifyDummyFunc func(password string)

	calls struct {
		Hash []struct {
			Password string
		}
		Verify []struct {
			Hash     string
			Password string
		}
		VerifyDummy []struct {
			Password string
		}
	}
	lockHash        sync.RWMutex
	lockVerify      sync.RWMutex
	lockVerifyDummy sync.RWMutex
}

func (mock *hasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("hasherMock.HashFunc: method is nil but hasher.Hash was just called")
	}
	callInfo := struct {
		Password string
	}{Password: password}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(password)
}

func (mock *hasherMock) HashCalls() []struct {
	Password string
} {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}

func (mock *hasherMock) Verify(hash string, password string) bool {
	if mock.VerifyFunc == nil {
		panic("hasherMock.VerifyFunc: method is nil but hasher.Verify was just called")
	}
	callInfo := struct {
		Hash     string
		Password string
	}{Hash: hash, Password: password}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(hash, password)
}

func (mock *hasherMock) VerifyCalls() []struct {
	Hash     string
	Password string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}

func (mock *hasherMock) VerifyDummy(password string) {
	if mock.VerifyDummyFunc == nil {
		panic("hasherMock.VerifyDummyFunc: method is nil but hasher.VerifyDummy was just called")
	}
	callInfo := struct {
		Password string
	}{Password: password}
	mock.lockVerifyDummy.Lock()
	mock.calls.VerifyDummy = append(mock.calls.VerifyDummy, callInfo)
	mock.lockVerifyDummy.Unlock()
	mock.VerifyDummyFunc(password)
}

func (mock *hasherMock) VerifyDummyCalls() []struct {
	Password string
} {
	mock.lockVerifyDummy.RLock()
	calls := mock.calls.VerifyDummy
	mock.lockVerifyDummy.RUnlock()
	return calls
}
