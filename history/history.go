package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tradepost/cmdargs/log"
)

const fileName = ".tp_history"

type Item struct {
	Cmd string `json:"cmd"`
	Ts  int64  `json:"ts"`
}

// NewHistoryHelper loads the history stored in dir and appends new entries
// to it. An unwritable file leaves the helper memory only.
func NewHistoryHelper(dir string) *Helper {
	filePath := path.Join(dir, fileName)
	h := &Helper{items: readItems(filePath)}

	// open file and create if non-existent
	hFile, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warn("failed to open history file", zap.String("path", filePath), zap.Error(err))
		return h
	}
	h.hFile = hFile
	return h
}

func readItems(filePath string) []Item {
	readFile, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer readFile.Close()

	var items []Item
	scanner := bufio.NewScanner(readFile)
	for scanner.Scan() {
		item := Item{}
		// malformed lines are skipped
		if err := json.Unmarshal(scanner.Bytes(), &item); err == nil && item.Cmd != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper command history helper.
type Helper struct {
	items []Item
	hFile *os.File
}

// AddLog add cmd log into history helper.
func (h *Helper) AddLog(cmd string) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return
	}
	item := Item{
		Ts:  time.Now().Unix(),
		Cmd: cmd,
	}
	if h.hFile != nil {
		bs, _ := json.Marshal(item)
		if _, err := h.hFile.Write(append(bs, '\n')); err != nil {
			log.Warn("failed to write history", zap.Error(err))
		}
	}
	h.items = append(h.items, item)
}

// List returns the history items starting with input, ignoring case, oldest
// first.
func (h *Helper) List(input string) []Item {
	input = strings.ToLower(input)
	return lo.Filter(h.items, func(item Item, _ int) bool {
		return strings.HasPrefix(strings.ToLower(item.Cmd), input)
	})
}

// Recent returns up to n distinct commands starting with input, most recent
// first.
func (h *Helper) Recent(input string, n int) []string {
	items := h.List(input)
	cmds := make([]string, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		cmds = append(cmds, items[i].Cmd)
	}
	cmds = lo.Uniq(cmds)
	if n > 0 && len(cmds) > n {
		cmds = cmds[:n]
	}
	return cmds
}

// Len returns the number of recorded commands.
func (h *Helper) Len() int {
	return len(h.items)
}

func (h *Helper) Close() {
	if h.hFile != nil {
		h.hFile.Close()
	}
}
