package main

import (
	"os"
	"path/filepath"
	"testing"

	"subleq/config"
	"subleq/vm"
)

func TestRunStopsWhenStopClosed(t *testing.T) {
	mem := make(vm.Memory, 64)
	inst, err := vm.New(mem)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg := config.Default()
	cfg.StepsPerFrame = 1000

	stop := make(chan struct{})
	close(stop) // already-closed: shouldStop is true from the first check

	if err := run(inst, cfg, stop); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunDumpsFrames(t *testing.T) {
	mem := make(vm.Memory, 64)
	inst, err := vm.New(mem)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dir := t.TempDir()
	cfg := config.Default()
	cfg.StepsPerFrame = 10
	cfg.FrameDumpPath = dir
	cfg.FramesPerDump = 1
	cfg.Screen.Width = 8
	cfg.Screen.Height = 8

	stop := make(chan struct{})
	close(stop)

	if err := run(inst, cfg, stop); err != nil {
		t.Fatalf("run: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d dumped frames, want 1", len(entries))
	}
}

func TestDumpFramePBMHeader(t *testing.T) {
	mem := make(vm.Memory, 4)
	dir := t.TempDir()
	cfg := config.Default()
	cfg.FrameDumpPath = dir
	cfg.Screen.Width = 8
	cfg.Screen.Height = 8

	if err := dumpFrame(mem, cfg, 3); err != nil {
		t.Fatalf("dumpFrame: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "frame-000003.pbm"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data[:3]) != "P4\n" {
		t.Fatalf("header = %q, want P4 magic", data[:3])
	}
}
