package backend

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// RenderTree はメニューをテキストのツリーとして描画します
// Windowsではショートカットの表示用ラベルを優先する
func RenderTree(title string, tree Tree, platform Platform) string {
	root := treeprint.NewWithRoot(title)
	for _, group := range tree {
		renderGroup(root, group, platform)
	}
	return root.String()
}

func renderGroup(parent treeprint.Tree, group Group, platform Platform) {
	label := group.Label
	if group.Role != "" {
		label = fmt.Sprintf("%s (role: %s)", label, group.Role)
	}
	branch := parent.AddBranch(label)

	for _, entry := range group.Items {
		switch item := entry.(type) {
		case Separator:
			branch.AddNode("---")
		case ActionItem:
			branch.AddMetaNode(item.ID, describeItem(item.Label, shortcutLabel(item.Accelerator, item.Win32Label, platform), item.Hidden))
		case RoleItem:
			text := describeItem(item.Label, shortcutLabel(item.Accelerator, item.Win32Label, platform), item.Hidden)
			branch.AddMetaNode(item.ID, fmt.Sprintf("%s (role: %s)", text, item.Role))
		case Group:
			renderGroup(branch, item, platform)
		}
	}
}

func shortcutLabel(accelerator *Accelerator, win32Label string, platform Platform) string {
	if platform == PlatformWindows && win32Label != "" {
		return win32Label
	}
	return accelerator.String()
}

func describeItem(label, shortcut string, hidden bool) string {
	var b strings.Builder
	b.WriteString(label)
	if shortcut != "" {
		b.WriteString("\t")
		b.WriteString(shortcut)
	}
	if hidden {
		b.WriteString(" [hidden]")
	}
	return b.String()
}
