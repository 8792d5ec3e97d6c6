package console

import (
	"strings"
	"testing"
)

func TestNodeEscapesText(t *testing.T) {
	node := Elem("td").WithText(`<script>alert("x")</script>`)
	rendered := node.Render()

	if strings.Contains(rendered, "<script>") {
		t.Errorf("文字內容未跳脫: %s", rendered)
	}
	if !strings.Contains(rendered, "&lt;script&gt;") {
		t.Errorf("輸出應含跳脫後的文字: %s", rendered)
	}
}

func TestNodeEscapesAttributes(t *testing.T) {
	node := Elem("div").WithAttr("title", `"><img src=x>`)
	rendered := node.Render()

	if strings.Contains(rendered, `"><img`) {
		t.Errorf("屬性值未跳脫: %s", rendered)
	}
}

func TestNodeRendersChildren(t *testing.T) {
	node := Elem("ul",
		Elem("li").WithText("白色上衣"),
		Elem("li").WithText("黑色長褲"),
	).WithAttr("class", "picking")

	rendered := node.Render()
	want := `<ul class="picking"><li>白色上衣</li><li>黑色長褲</li></ul>`
	if rendered != want {
		t.Errorf("Render = %s, 預期 %s", rendered, want)
	}
}
