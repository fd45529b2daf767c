package classmodel

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// parseStyleExtras pulls the Visual Styles-only sections out of the class
// model document: default color names, theme metrics, and the localized
// language list.
//
//	<Model>
//	  <ThemeElements>
//	    <DefaultColors>
//	      <Color name="Black" value="#000000"/>
//	    </DefaultColors>
//	    <ThemeMetrics>
//	      <Metric name="Button.height" value="24"/>
//	    </ThemeMetrics>
//	    <Languages>
//	      <Language name="en"/>
//	    </Languages>
//	  </ThemeElements>
//	</Model>
func parseStyleExtras(data []byte) (colors map[string]string, metrics map[string]float64, langs []string) {
	var doc struct {
		Theme struct {
			DefaultColors struct {
				Colors []struct {
					Name  string `xml:"name,attr"`
					Value string `xml:"value,attr"`
				} `xml:"Color"`
			} `xml:"DefaultColors"`
			ThemeMetrics struct {
				Metrics []struct {
					Name  string `xml:"name,attr"`
					Value string `xml:"value,attr"`
				} `xml:"Metric"`
			} `xml:"ThemeMetrics"`
			Languages struct {
				Languages []struct {
					Name string `xml:"name,attr"`
				} `xml:"Language"`
			} `xml:"Languages"`
		} `xml:"ThemeElements"`
	}

	colors = make(map[string]string)
	metrics = make(map[string]float64)

	if err := xml.Unmarshal(data, &doc); err != nil {
		return colors, metrics, nil
	}

	for _, c := range doc.Theme.DefaultColors.Colors {
		if c.Name != "" {
			colors[c.Name] = c.Value
		}
	}
	for _, mt := range doc.Theme.ThemeMetrics.Metrics {
		if mt.Name == "" {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(mt.Value), 64); err == nil {
			metrics[mt.Name] = v
		}
	}
	for _, l := range doc.Theme.Languages.Languages {
		if l.Name != "" {
			langs = append(langs, l.Name)
		}
	}

	return colors, metrics, langs
}
