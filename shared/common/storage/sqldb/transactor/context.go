package transactor

import "context"

type transactorKey struct{}

// txState คือสิ่งที่เก็บไว้ใน context ระหว่างอยู่ใน transaction
type txState struct {
	db    sqlxDB
	hooks *[]PostCommitHook
}

func txToContext(ctx context.Context, state txState) context.Context {
	return context.WithValue(ctx, transactorKey{}, state)
}

func txFromContext(ctx context.Context) (txState, bool) {
	state, ok := ctx.Value(transactorKey{}).(txState)
	return state, ok
}

func IsWithinTransaction(ctx context.Context) bool {
	_, ok := txFromContext(ctx)
	return ok
}
