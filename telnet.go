package chat

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/rs/zerolog"
)

// TelnetServer is a plaintext operator console. Every line is
// dispatched as a console-sourced chat command. It blocks until the
// listener fails.
func TelnetServer(addr string, p *Pipeline, log zerolog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			log.Warn().Err(err).Msg("telnet accept failed")
			continue
		}

		go handleTelnet(conn, p, log)
	}
}

func handleTelnet(conn net.Conn, p *Pipeline, log zerolog.Logger) {
	defer conn.Close()

	b := bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))

	b.WriteString("mt-multiserver-chat console\n")
	b.Flush()

	for {
		b.WriteString(">")
		b.Flush()

		line, err := b.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}

			log.Warn().Err(err).Msg("telnet read failed")
			return
		}

		if reply := DoChatCmd(p, CmdSource{Console: true}, strings.TrimSpace(line)); reply != "" {
			b.WriteString(reply + "\n")
		}
	}
}
