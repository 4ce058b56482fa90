package services

import (
	"context"
	"errors"
	"strings"

	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

// mockConverter is a configurable converter for dispatcher tests.
type mockConverter struct {
	desc    *domain.ConverterDescriptor
	result  domain.Result
	err     error
	panicV  any
	calls   int
	gotData string
	gotOpts domain.ConvertOptions
}

var _ driven.Converter = (*mockConverter)(nil)

func newMockConverter(name string) *mockConverter {
	return &mockConverter{
		desc: &domain.ConverterDescriptor{
			Name:        name,
			Version:     "1.0",
			Description: name + " command parser",
			Author:      "test",
			AuthorEmail: "test@example.com",
			Compatible:  []domain.OSFamily{domain.OSLinux},
		},
		result: domain.Many([]domain.Record{{"name": name}}),
	}
}

func (m *mockConverter) Descriptor() *domain.ConverterDescriptor { return m.desc }

func (m *mockConverter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	m.calls++
	m.gotData = data
	m.gotOpts = opts
	if m.panicV != nil {
		panic(m.panicV)
	}
	if m.err != nil {
		return domain.Result{}, m.err
	}
	return m.result, nil
}

// mockInput records whether the dispatcher read it.
type mockInput struct {
	data        string
	interactive bool
	err         error
	reads       int
}

func (m *mockInput) Interactive() bool { return m.interactive }

func (m *mockInput) ReadAll() (string, error) {
	m.reads++
	if m.err != nil {
		return "", m.err
	}
	return m.data, nil
}

var errMockRead = errors.New("read failed")

// newTestRegistry builds a registry with one mock per name, flagged --name.
func newTestRegistry(names ...string) (*ConverterRegistry, map[string]*mockConverter) {
	mocks := make(map[string]*mockConverter, len(names))
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		m := newMockConverter(n)
		mocks[n] = m
		entries = append(entries, Entry{Flag: "--" + strings.ReplaceAll(n, "_", "-"), Converter: m})
	}
	r, err := NewConverterRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r, mocks
}
