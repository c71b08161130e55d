package main

import (
	"errors"
	"net"
	"testing"
)

func TestListenAndOpen(t *testing.T) {
	var dialErr error
	opened := ""
	open := func(u string) error {
		opened = u
		// The port must already accept connections.
		conn, err := net.Dial("tcp", u)
		if err == nil {
			conn.Close()
		}
		dialErr = err
		return nil
	}

	ln, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ln, err = listenAndOpen(addr, addr, open)
	if err != nil {
		t.Fatalf("listenAndOpen() error: %v", err)
	}
	defer ln.Close()

	if opened != addr {
		t.Errorf("opened = %q, want %q", opened, addr)
	}
	if dialErr != nil {
		t.Errorf("port not bound when opening: %v", dialErr)
	}
}

func TestListenAndOpen_NoOpener(t *testing.T) {
	ln, err := listenAndOpen("localhost:0", "http://localhost/", nil)
	if err != nil {
		t.Fatalf("listenAndOpen() error: %v", err)
	}
	ln.Close()
}

func TestListenAndOpen_OpenerFailure(t *testing.T) {
	ln, err := listenAndOpen("localhost:0", "http://localhost/", func(string) error {
		return errors.New("no browser")
	})
	if err != nil {
		t.Fatalf("listenAndOpen() error = %v, want the listener despite the opener failure", err)
	}
	ln.Close()
}

func TestListenAndOpen_PortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	defer busy.Close()

	called := false
	if _, err := listenAndOpen(busy.Addr().String(), "x", func(string) error {
		called = true
		return nil
	}); err == nil {
		t.Fatal("expected error for a bound port")
	}
	if called {
		t.Error("browser opened although the port could not be bound")
	}
}
