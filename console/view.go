package console

import (
	"html"
	"sort"
	"strings"
)

// Node 畫面元素節點，文字內容在輸出時一律跳脫
// 取代以字串拼接組 HTML 的做法，避免把訂單資料當成標記解讀
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// Elem 建立指定標籤的節點
func Elem(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Text 建立純文字節點
func Text(text string) *Node {
	return &Node{Text: text}
}

// WithAttr 設定節點屬性並回傳節點本身，方便串接
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[key] = value
	return n
}

// WithText 設定節點的文字內容並回傳節點本身
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

// Append 加入子節點
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Render 輸出 HTML，屬性依名稱排序讓輸出穩定
func (n *Node) Render() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	if n.Tag == "" {
		sb.WriteString(html.EscapeString(n.Text))
		return
	}

	sb.WriteString("<")
	sb.WriteString(n.Tag)

	keys := make([]string, 0, len(n.Attrs))
	for key := range n.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sb.WriteString(" ")
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(n.Attrs[key]))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")

	if n.Text != "" {
		sb.WriteString(html.EscapeString(n.Text))
	}
	for _, child := range n.Children {
		child.render(sb)
	}

	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteString(">")
}
