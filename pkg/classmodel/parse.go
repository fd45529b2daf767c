package classmodel

import (
	"encoding/xml"
	"strings"
)

// The class-model XML vocabulary (spec.md §6 "Class-model file format"):
//
//	<Model>
//	  <Model.Class name="View" parent="Layout" abstract="false">
//	    <Attributes x:id="attributes">
//	      <Class:SchemaGroups>Container Visual</Class:SchemaGroups>
//	      <Class:ChildGroup>Layout</Class:ChildGroup>
//	    </Attributes>
//	    <List x:id="members">
//	      <Model.Member name="style" type="Style"/>
//	    </List>
//	    <Model.Documentation>
//	      <String x:id="brief">...</String>
//	      <String x:id="detailed">...</String>
//	      <String x:id="code">...</String>
//	    </Model.Documentation>
//	  </Model.Class>
//	  <Model.Enumeration name="Align" parent="Button.align">
//	    <Model.Enumerator name="left"/>
//	  </Model.Enumeration>
//	</Model>

type xmlModel struct {
	XMLName      xml.Name        `xml:"Model"`
	Classes      []xmlClass      `xml:"Model.Class"`
	Enumerations []xmlEnum       `xml:"Model.Enumeration"`
}

type xmlClass struct {
	Name          string          `xml:"name,attr"`
	Parent        string          `xml:"parent,attr"`
	Abstract      string          `xml:"abstract,attr"`
	Attributes    []xmlAttributes `xml:"Attributes"`
	Members       xmlMemberList   `xml:"List"`
	Documentation *xmlDoc         `xml:"Model.Documentation"`
}

type xmlAttributes struct {
	ID            string   `xml:"id,attr"`
	SchemaGroups  string   `xml:"SchemaGroups"`
	ChildGroup    string   `xml:"ChildGroup"`
}

type xmlMemberList struct {
	ID      string       `xml:"id,attr"`
	Members []xmlMember  `xml:"Model.Member"`
}

type xmlMember struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type xmlDoc struct {
	Strings []xmlDocString `xml:"String"`
}

type xmlDocString struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type xmlEnum struct {
	Name    string          `xml:"name,attr"`
	Parent  string          `xml:"parent,attr"`
	Entries []xmlEnumerator `xml:"Model.Enumerator"`
}

type xmlEnumerator struct {
	Name string `xml:"name,attr"`
}

// parseModel parses a class-model document into ClassDefs and EnumDefs.
func parseModel(data []byte) (map[string]*ClassDef, map[string]*EnumDef, error) {
	var doc xmlModel
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}

	classes := make(map[string]*ClassDef, len(doc.Classes))
	for _, xc := range doc.Classes {
		cd := &ClassDef{
			Name:       xc.Name,
			Parent:     xc.Parent,
			Abstract:   strings.EqualFold(xc.Abstract, "true"),
			Attributes: make(map[string]AttributeTypeMask, len(xc.Members.Members)),
		}
		for _, m := range xc.Members.Members {
			cd.Attributes[m.Name] = ParseTypeName(m.Type)
		}
		for _, attrs := range xc.Attributes {
			if attrs.SchemaGroups != "" {
				cd.SchemaGroups = strings.Fields(attrs.SchemaGroups)
			}
			if attrs.ChildGroup != "" {
				cd.ChildrenGroup = strings.TrimSpace(attrs.ChildGroup)
			}
		}
		if xc.Documentation != nil {
			for _, s := range xc.Documentation.Strings {
				switch s.ID {
				case "brief":
					cd.Doc.Brief = strings.TrimSpace(s.Value)
				case "detailed":
					cd.Doc.Detailed = strings.TrimSpace(s.Value)
				case "code":
					cd.Doc.Code = strings.TrimSpace(s.Value)
				}
			}
		}
		classes[cd.Name] = cd
	}

	enums := make(map[string]*EnumDef, len(doc.Enumerations))
	for _, xe := range doc.Enumerations {
		ed := &EnumDef{Name: xe.Name, Parent: xe.Parent}
		for _, entry := range xe.Entries {
			ed.Entries = append(ed.Entries, entry.Name)
		}
		enums[ed.Name] = ed
	}

	return classes, enums, nil
}
