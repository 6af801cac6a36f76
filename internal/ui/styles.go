package ui

import "github.com/Zachkp/portfolio/internal/dom"

const injectedStyleID = "ui-injected-styles"

const injectedCSS = `
    .error {
        color: #ef4444 !important;
        font-size: 0.9rem;
        margin-top: 0.5rem;
    }

    input.error, textarea.error {
        border-color: #ef4444 !important;
    }

    .hamburger.active .bar:nth-child(1) {
        transform: rotate(-45deg) translate(-5px, 6px);
    }

    .hamburger.active .bar:nth-child(2) {
        opacity: 0;
    }

    .hamburger.active .bar:nth-child(3) {
        transform: rotate(45deg) translate(-5px, -6px);
    }
`

// InjectStyles appends the error-state and hamburger rules to <head>. It
// adds the block at most once per document.
func InjectStyles(doc dom.Document) {
	if doc.GetElementByID(injectedStyleID) != nil {
		return
	}
	head := doc.Head()
	if head == nil {
		return
	}
	style := doc.CreateElement("style")
	style.SetAttr("id", injectedStyleID)
	style.SetText(injectedCSS)
	head.AppendChild(style)
}
