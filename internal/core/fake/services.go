package fake

import (
	"context"
	"sync"
	"time"

	"eduledger/internal/ethereum"
	tokenIssuer "eduledger/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

// EthereumService is a hand-rolled test double for core.EthereumService.
type EthereumService struct {
	mu sync.Mutex

	FetchConfirmationStub    func(ctx context.Context, hash string) (ethereum.Confirmation, error)
	fetchConfirmationArgs    []string
	fetchConfirmationReturns struct {
		conf ethereum.Confirmation
		err  error
	}
}

func (f *EthereumService) FetchConfirmation(ctx context.Context, hash string) (ethereum.Confirmation, error) {
	f.mu.Lock()
	f.fetchConfirmationArgs = append(f.fetchConfirmationArgs, hash)
	stub := f.FetchConfirmationStub
	ret := f.fetchConfirmationReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, hash)
	}
	return ret.conf, ret.err
}

func (f *EthereumService) FetchConfirmationReturns(conf ethereum.Confirmation, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchConfirmationReturns = struct {
		conf ethereum.Confirmation
		err  error
	}{conf, err}
}

func (f *EthereumService) FetchConfirmationCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fetchConfirmationArgs)
}

func (f *EthereumService) FetchConfirmationArgsForCall(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchConfirmationArgs[i]
}

// JWTIssuer is a hand-rolled test double for core.JWTIssuer.
type JWTIssuer struct {
	mu sync.Mutex

	GenerateStub    func(data tokenIssuer.TokenInfo) *jwt.Token
	generateArgs    []tokenIssuer.TokenInfo
	generateReturns *jwt.Token

	SignStub    func(token *jwt.Token) (string, error)
	signArgs    []*jwt.Token
	signReturns struct {
		signed string
		err    error
	}

	ValidateStub    func(token string) (jwt.MapClaims, error)
	validateArgs    []string
	validateReturns struct {
		claims jwt.MapClaims
		err    error
	}
}

func (f *JWTIssuer) Generate(data tokenIssuer.TokenInfo) *jwt.Token {
	f.mu.Lock()
	f.generateArgs = append(f.generateArgs, data)
	stub := f.GenerateStub
	ret := f.generateReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(data)
	}
	return ret
}

func (f *JWTIssuer) GenerateReturns(token *jwt.Token) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generateReturns = token
}

func (f *JWTIssuer) GenerateCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.generateArgs)
}

func (f *JWTIssuer) GenerateArgsForCall(i int) tokenIssuer.TokenInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generateArgs[i]
}

func (f *JWTIssuer) Sign(token *jwt.Token) (string, error) {
	f.mu.Lock()
	f.signArgs = append(f.signArgs, token)
	stub := f.SignStub
	ret := f.signReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(token)
	}
	return ret.signed, ret.err
}

func (f *JWTIssuer) SignReturns(signed string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signReturns = struct {
		signed string
		err    error
	}{signed, err}
}

func (f *JWTIssuer) SignCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.signArgs)
}

func (f *JWTIssuer) SignArgsForCall(i int) *jwt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signArgs[i]
}

func (f *JWTIssuer) Validate(token string) (jwt.MapClaims, error) {
	f.mu.Lock()
	f.validateArgs = append(f.validateArgs, token)
	stub := f.ValidateStub
	ret := f.validateReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(token)
	}
	return ret.claims, ret.err
}

func (f *JWTIssuer) ValidateReturns(claims jwt.MapClaims, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validateReturns = struct {
		claims jwt.MapClaims
		err    error
	}{claims, err}
}

func (f *JWTIssuer) ValidateCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.validateArgs)
}

func (f *JWTIssuer) ValidateArgsForCall(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateArgs[i]
}

// Cache is a hand-rolled test double for core.Cache. A zero value behaves as
// an always-missing cache.
type Cache struct {
	mu sync.Mutex

	GetStub    func(ctx context.Context, key string, dest any) bool
	getArgs    []string
	getReturns bool

	SetStub func(ctx context.Context, key string, value any, ttl time.Duration)
	setArgs []setArgs
}

type setArgs struct {
	key   string
	value any
	ttl   time.Duration
}

func (f *Cache) Get(ctx context.Context, key string, dest any) bool {
	f.mu.Lock()
	f.getArgs = append(f.getArgs, key)
	stub := f.GetStub
	ret := f.getReturns
	f.mu.Unlock()
	if stub != nil {
		return stub(ctx, key, dest)
	}
	return ret
}

func (f *Cache) GetReturns(hit bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getReturns = hit
}

func (f *Cache) GetCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.getArgs)
}

func (f *Cache) GetArgsForCall(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getArgs[i]
}

func (f *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	f.mu.Lock()
	f.setArgs = append(f.setArgs, setArgs{key, value, ttl})
	stub := f.SetStub
	f.mu.Unlock()
	if stub != nil {
		stub(ctx, key, value, ttl)
	}
}

func (f *Cache) SetCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.setArgs)
}

func (f *Cache) SetArgsForCall(i int) (string, any, time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setArgs[i].key, f.setArgs[i].value, f.setArgs[i].ttl
}
