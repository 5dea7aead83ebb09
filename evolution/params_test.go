package evolution

import "testing"

func TestParamsSetClamps(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"in range", 0.5, 0.5},
		{"below", -2.0, 0},
		{"above", 1.7, 1},
		{"zero", 0, 0},
		{"one", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Params
			p.Set(ParamTemperature, tt.value)
			if p.Temperature != tt.want {
				t.Errorf("Temperature = %v, want %v", p.Temperature, tt.want)
			}
		})
	}
}

func TestParamsSetByName(t *testing.T) {
	var p Params
	p.Set(ParamTemperature, 0.1)
	p.Set(ParamEnergy, 0.2)
	p.Set(ParamTurbulence, 0.3)

	if p.Temperature != 0.1 || p.Energy != 0.2 || p.Turbulence != 0.3 {
		t.Errorf("unexpected params: %+v", p)
	}

	if got := p.Get(ParamEnergy); got != 0.2 {
		t.Errorf("Get(energy) = %v, want 0.2", got)
	}
}

func TestParamsUnknownName(t *testing.T) {
	var p Params
	p.Set("pressure", 0.9)

	if p != (Params{}) {
		t.Errorf("unknown name mutated params: %+v", p)
	}
	if got := p.Get("pressure"); got != 0 {
		t.Errorf("Get(unknown) = %v, want 0", got)
	}
}
