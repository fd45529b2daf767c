package skinindex

import "github.com/dimelords/skinlang/pkg/skinxml"

// IndexFile builds a SkinFileInfo by walking root (as returned by
// skinxml.Parse), classifying every recognized element into its
// category and recording form-instantiation dependency edges.
func IndexFile(uri string, root *skinxml.Node) *SkinFileInfo {
	info := newSkinFileInfo(uri)
	indexChildren(root.Children, PlatformAny, info, nil)
	return info
}

// indexChildren walks one sibling list, tracking platform-gating state
// introduced by `<?platform ...?>`/`<?not:...?>` processing-instruction
// siblings that bracket a run of elements until a bare `<?platform?>`
// terminator. formStack is the chain of enclosing <Form> names, used to
// record ViewInstantiation edges into FormDependencies; it is passed as
// nil while walking inside an <If>/<Switch> body so conditional
// instantiations are not recorded as unconditional dependencies.
func indexChildren(children []*skinxml.Node, platform Platform, info *SkinFileInfo, formStack []string) {
	region := platform
	for _, child := range children {
		if child.IsProcInst {
			if gated, isTerminator := platformDirective(child); isTerminator {
				region = platform
			} else {
				region = gated
			}
			continue
		}
		indexOne(child, region, info, formStack)
	}
}

// platformDirective interprets one processing-instruction sibling as a
// platform-gating directive. A bare "<?platform?>" (empty Inst) is the
// terminator that reverts to the enclosing platform. "<?platform mac?>"
// / "<?platform win?>" gate to that platform; "<?not:mac?>" gates to the
// opposite (win); "<?desktop_platform?>" does not narrow by platform
// (desktop vs. mobile is outside this index's platform axis).
func platformDirective(pi *skinxml.Node) (Platform, bool) {
	switch pi.ProcTarget {
	case "platform":
		switch pi.ProcInst {
		case "":
			return PlatformAny, true
		case "mac":
			return PlatformMac, false
		case "win":
			return PlatformWin, false
		}
	case "not:mac":
		return PlatformWin, false
	case "not:win":
		return PlatformMac, false
	case "not":
		if pi.ProcInst == "mac" {
			return PlatformWin, false
		}
		if pi.ProcInst == "win" {
			return PlatformMac, false
		}
	}
	return PlatformAny, false
}

func indexOne(child *skinxml.Node, platform Platform, info *SkinFileInfo, formStack []string) {
	name := child.AttrValue("name")

	if cat, ok := categoryTags[child.Name]; ok && name != "" {
		info.addDefinition(&Definition{
			Name:     name,
			Node:     child,
			Category: cat,
			Platform: platform,
			Override: child.AttrValue("override") == "true",
		})
		if cat == CategoryImage {
			indexImageFrames(child, name, platform, info)
		}
	}

	switch child.Name {
	case "Delegate":
		info.Delegates[name] = append(info.Delegates[name], child)
	case "ViewInstantiation":
		info.ViewInstantiations = append(info.ViewInstantiations, child)
		if len(formStack) > 0 {
			target := child.AttrValue("form")
			if target != "" {
				owner := formStack[len(formStack)-1]
				info.FormDependencies[owner] = appendUnique(info.FormDependencies[owner], target)
			}
		}
	}

	switch child.Name {
	case "Form":
		indexChildren(child.Children, platform, info, append(append([]string{}, formStack...), name))
	case "If", "Switch":
		indexChildren(child.Children, platform, info, nil)
	default:
		indexChildren(child.Children, platform, info, formStack)
	}
}

// indexImageFrames fabricates one extra CategoryImage definition per
// space-separated token in a `frames="a b c"` attribute, so references
// to "Icon.a" resolve against the parent <Image name="Icon"> node.
func indexImageFrames(imageNode *skinxml.Node, baseName string, platform Platform, info *SkinFileInfo) {
	frames := imageNode.AttrValue("frames")
	if frames == "" {
		return
	}
	start := 0
	for i := 0; i <= len(frames); i++ {
		if i == len(frames) || frames[i] == ' ' {
			if i > start {
				frame := frames[start:i]
				info.addDefinition(&Definition{
					Name:     baseName + "." + frame,
					Node:     imageNode,
					Category: CategoryImage,
					Platform: platform,
				})
			}
			start = i + 1
		}
	}
}
