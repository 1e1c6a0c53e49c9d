package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

type signalInvalidator struct {
	ch chan struct{}
}

func (s *signalInvalidator) Invalidate() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

func TestIsPostEvent(t *testing.T) {
	cases := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"markdown write", fsnotify.Event{Name: "/posts/hu/a.md", Op: fsnotify.Write}, true},
		{"mdx create", fsnotify.Event{Name: "/posts/en/b.MDX", Op: fsnotify.Create}, true},
		{"markdown remove", fsnotify.Event{Name: "/posts/hu/a.md", Op: fsnotify.Remove}, true},
		{"markdown rename", fsnotify.Event{Name: "/posts/hu/a.md", Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: "/posts/hu/a.md", Op: fsnotify.Chmod}, false},
		{"editor swap file", fsnotify.Event{Name: "/posts/hu/.a.md.swp", Op: fsnotify.Write}, false},
		{"unrelated extension", fsnotify.Event{Name: "/posts/hu/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, isPostEvent(tc.event))
		})
	}
}

func TestNew_MissingLocaleDirectory_Fails(t *testing.T) {
	root := t.TempDir()

	_, err := New(root, []string{"hu"}, &signalInvalidator{ch: make(chan struct{}, 1)})
	require.Error(t, err)
}

func TestWatcher_InvalidatesOnPostWrite(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "hu"), 0755))

	inv := &signalInvalidator{ch: make(chan struct{}, 1)}
	cw, err := New(root, []string{"hu"}, inv)
	require.NoError(t, err)
	defer cw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cw.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(root, "hu", "new-post.md"), []byte("---\ntitle: x\n---\n"), 0644))

	select {
	case <-inv.ch:
	case <-time.After(5 * time.Second):
		t.Fatal("expected cache invalidation after post write")
	}
}
